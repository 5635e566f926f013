package models

import "time"

type Config struct {
	FancyScreen bool           `json:"fancy_screen"`
	HTTP        HTTPConfig     `json:"http"`
	Upstream    UpstreamConfig `json:"upstream"`
}

type HTTPConfig struct {
	Port          int    `json:"port" validate:"required,min=1,max=65535"`
	ListeningAddr string `json:"listening_addr" validate:"required"`
}

type UpstreamConfig struct {
	PokeAPIBaseURL     string `json:"pokeapi_base_url" validate:"required,url"`
	TranslationBaseURL string `json:"translation_base_url" validate:"required,url"`
	TimeoutSeconds     int    `json:"timeout_seconds" validate:"min=1,max=300"`
}

// Timeout is the bound applied to every outbound request.
func (c UpstreamConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

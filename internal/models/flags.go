package models

type Flags struct {
	Mode       string `short:"m" long:"mode" env:"MODE" required:"true" description:"The mode Local Pokedex is running in: cli/docker" default:"cli"`
	ConfigPath string `short:"c" long:"config" env:"CONFIG_PATH" description:"Path to the JSON configuration file" default:"config.json"`

	PokeAPIURL     string `long:"pokeapi-url" env:"POKEAPI_BASE_URL" description:"Base URL of the PokeAPI (overrides the config file)"`
	TranslationURL string `long:"translation-url" env:"TRANSLATION_BASE_URL" description:"Base URL of the fun translations API (overrides the config file)"`
	HTTPAddr       string `long:"http-addr" env:"HTTP_ADDR" description:"Address to listen on (overrides the config file)"`
	HTTPPort       int    `long:"http-port" env:"HTTP_PORT" description:"Port to listen on (overrides the config file)"`
}

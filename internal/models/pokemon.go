package models

import (
	"errors"
	"fmt"
	"strings"
)

// Style is the voice the translation API is asked to rewrite a description in.
type Style string

const (
	StyleYoda        Style = "yoda"
	StyleShakespeare Style = "shakespeare"
)

// Pokemon is the normalized record served by the API. It is built fresh for
// every request and treated as a value.
type Pokemon struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Habitat     *string `json:"habitat,omitempty"`
	IsLegendary bool    `json:"isLegendary"`
}

// WithDescription returns a copy of p carrying the given description.
func (p Pokemon) WithDescription(description string) Pokemon {
	p.Description = description
	return p
}

// HabitatName returns the habitat, or an empty string when upstream had none.
func (p Pokemon) HabitatName() string {
	if p.Habitat == nil {
		return ""
	}
	return *p.Habitat
}

var ErrInvalidName = errors.New("pokemon name cannot be null or empty")

// NotFoundError is returned when the upstream has no document for a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon not found: %s", e.Name)
}

// NormalizeName trims and lower-cases a requested name.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return strings.ToLower(name), nil
}

package pokeapi

import "fmt"

// UpstreamError is returned when the species lookup could not be completed,
// either because the request failed or PokeAPI answered with an unexpected
// status.
type UpstreamError struct {
	Name       string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pokeapi lookup for %q failed with status %d", e.Name, e.StatusCode)
	}
	return fmt.Sprintf("pokeapi lookup for %q failed: %v", e.Name, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MappingError is returned when PokeAPI answered with a document that is not
// a JSON object.
type MappingError struct {
	Name string
	Err  error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("unable to map species document for %q: %v", e.Name, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

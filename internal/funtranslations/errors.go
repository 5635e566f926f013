package funtranslations

import "fmt"

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("translation api returned status %d", e.StatusCode)
}

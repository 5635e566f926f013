package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCleanStop(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"sigterm", errors.New("received signal: terminated"), true},
		{"interrupt", errors.New("received signal: interrupt"), true},
		{"cancelled", fmt.Errorf("server: %w", context.Canceled), true},
		{"dashboard_closed", errScreenClosed, true},
		{"port_in_use", errors.New("listen tcp 0.0.0.0:8080: bind: address already in use"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCleanStop(tt.err))
		})
	}
}

package pokedex

import (
	"context"
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

type fakeResolver struct {
	mon   models.Pokemon
	err   error
	calls []string
}

func (f *fakeResolver) Resolve(_ context.Context, name string) (models.Pokemon, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return models.Pokemon{}, f.err
	}
	return f.mon, nil
}

type translateCall struct {
	text  string
	style models.Style
}

type fakeTranslator struct {
	text  string
	ok    bool
	calls []translateCall
}

func (f *fakeTranslator) Translate(_ context.Context, text string, style models.Style) (string, bool) {
	f.calls = append(f.calls, translateCall{text: text, style: style})
	if !f.ok {
		return text, false
	}
	return f.text, true
}

// newTestPokemon builds a record the way the resolver would.
func newTestPokemon(t *testing.T, id int64, name, description, habitat string, legendary bool) models.Pokemon {
	t.Helper()

	mon := models.Pokemon{
		ID:          &id,
		Name:        name,
		Description: description,
		IsLegendary: legendary,
	}
	if habitat != "" {
		mon.Habitat = &habitat
	}
	return mon
}

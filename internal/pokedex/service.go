// Package pokedex composes the species lookup and the translation step.
package pokedex

import (
	"context"
	"errors"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/metrics"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
)

const (
	endpointPlain      = "plain"
	endpointTranslated = "translated"
)

type SpeciesResolver interface {
	Resolve(ctx context.Context, name string) (models.Pokemon, error)
}

// Translator returns the translated text and whether a translation was
// obtained. It must hand text back unchanged when it was not.
type Translator interface {
	Translate(ctx context.Context, text string, style models.Style) (string, bool)
}

type Service struct {
	resolver   SpeciesResolver
	translator Translator
	metrics    *metrics.Metrics
}

// NewService wires the orchestrator. m may be nil.
func NewService(resolver SpeciesResolver, translator Translator, m *metrics.Metrics) *Service {
	return &Service{
		resolver:   resolver,
		translator: translator,
		metrics:    m,
	}
}

// Get returns the record for name with its English description.
func (s *Service) Get(ctx context.Context, name string) (models.Pokemon, error) {
	mon, err := s.resolve(ctx, name)
	s.metrics.ObserveLookup(endpointPlain, outcome(err))
	return mon, err
}

// GetTranslated returns the record for name with its description rewritten
// in the style chosen by SelectStyle. A failed translation keeps the original
// description.
func (s *Service) GetTranslated(ctx context.Context, name string) (models.Pokemon, error) {
	mon, err := s.resolve(ctx, name)
	s.metrics.ObserveLookup(endpointTranslated, outcome(err))
	if err != nil {
		return models.Pokemon{}, err
	}

	if mon.Description == "" {
		return mon, nil
	}

	style := SelectStyle(mon)
	text, ok := s.translator.Translate(ctx, mon.Description, style)
	s.metrics.ObserveTranslation(string(style), ok)

	log.FromContext(ctx).WithFields(log.Fields{
		"pokemon":    mon.Name,
		"style":      style,
		"translated": ok,
	}).Debug("translation step complete")

	if !ok {
		return mon, nil
	}

	return mon.WithDescription(text), nil
}

func (s *Service) resolve(ctx context.Context, name string) (models.Pokemon, error) {
	if _, err := models.NormalizeName(name); err != nil {
		return models.Pokemon{}, err
	}

	return s.resolver.Resolve(ctx, strings.TrimSpace(name))
}

func outcome(err error) string {
	var notFound *models.NotFoundError

	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, models.ErrInvalidName):
		return metrics.OutcomeInvalidInput
	case errors.As(err, &notFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

package pokemon

import (
	"context"
	"errors"
	"net/http"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

type Service interface {
	Get(ctx context.Context, name string) (models.Pokemon, error)
	GetTranslated(ctx context.Context, name string) (models.Pokemon, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/translated/{name}", h.getTranslated)
	r.Get("/{name}", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	log.FromContext(r.Context()).WithField("pokemon", name).Info("received request for pokemon")

	mon, err := h.svc.Get(r.Context(), name)
	if err != nil {
		h.writeError(w, r, name, err)
		return
	}

	chix.JSON(w, r, http.StatusOK, mon)
}

func (h *Handler) getTranslated(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	log.FromContext(r.Context()).WithField("pokemon", name).Info("received request for translated pokemon")

	mon, err := h.svc.GetTranslated(r.Context(), name)
	if err != nil {
		h.writeError(w, r, name, err)
		return
	}

	chix.JSON(w, r, http.StatusOK, mon)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, name string, err error) {
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		log.FromContext(r.Context()).WithError(err).WithField("pokemon", name).Error("failed to look up pokemon")
	}

	msg := err.Error()
	switch status {
	case http.StatusBadGateway:
		msg = "upstream lookup failed"
	case http.StatusInternalServerError:
		msg = "failed to get pokemon"
	}

	chix.JSON(w, r, status, chix.M{"error": msg})
}

func statusFor(err error) int {
	var (
		notFound *models.NotFoundError
		upstream *pokeapi.UpstreamError
		mapping  *pokeapi.MappingError
	)

	switch {
	case errors.Is(err, models.ErrInvalidName):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &upstream), errors.As(err, &mapping):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

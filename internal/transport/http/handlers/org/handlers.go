package orghandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"peoplehub/internal/domain/org"
	"peoplehub/internal/transport/http/api"
	"peoplehub/internal/transport/http/middleware"
	"peoplehub/internal/validation"
)

type Handler struct {
	Store *org.Store
}

func NewHandler(store *org.Store) *Handler {
	return &Handler{Store: store}
}

// Routes mounts the role and designation CRUD endpoints. Both entities
// share the same shape, so the handlers funnel through lookup helpers.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.list(h.Store.ListRoles))
		r.Post("/", h.create(h.Store.CreateRole))
		r.Put("/{id}", h.update(h.Store.UpdateRole))
		r.Delete("/{id}", h.delete(h.Store.DeleteRole))
	})
	r.Route("/designations", func(r chi.Router) {
		r.Get("/", h.list(h.Store.ListDesignations))
		r.Post("/", h.create(h.Store.CreateDesignation))
		r.Put("/{id}", h.update(h.Store.UpdateDesignation))
		r.Delete("/{id}", h.delete(h.Store.DeleteDesignation))
	})
}

func (h *Handler) list(fetch func(context.Context) ([]org.Lookup, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetRequestID(r.Context())
		entries, err := fetch(r.Context())
		if err != nil {
			slog.Error("lookup list failed", "err", err, "requestId", reqID)
			api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
			return
		}
		api.Success(w, entries, reqID)
	}
}

func (h *Handler) create(insert func(context.Context, string, string) (*org.Lookup, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetRequestID(r.Context())
		payload, ok := decodeLookup(w, r, reqID)
		if !ok {
			return
		}
		entry, err := insert(r.Context(), payload.Name, payload.Description)
		if err != nil {
			writeLookupError(w, err, reqID)
			return
		}
		api.Created(w, entry, reqID)
	}
}

func (h *Handler) update(change func(context.Context, string, string, string) (*org.Lookup, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetRequestID(r.Context())
		payload, ok := decodeLookup(w, r, reqID)
		if !ok {
			return
		}
		entry, err := change(r.Context(), chi.URLParam(r, "id"), payload.Name, payload.Description)
		if err != nil {
			writeLookupError(w, err, reqID)
			return
		}
		api.Success(w, entry, reqID)
	}
}

func (h *Handler) delete(remove func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetRequestID(r.Context())
		if err := remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeLookupError(w, err, reqID)
			return
		}
		api.Success(w, map[string]string{"status": "deleted"}, reqID)
	}
}

func decodeLookup(w http.ResponseWriter, r *http.Request, reqID string) (validation.LookupInput, bool) {
	var payload validation.LookupInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return payload, false
	}
	if issues := payload.Validate(); len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "invalid request", issues, reqID)
		return payload, false
	}
	return payload, true
}

func writeLookupError(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, org.ErrNameTaken):
		api.Fail(w, http.StatusConflict, "name_taken", "name already exists", reqID)
	case errors.Is(err, org.ErrInUse):
		api.Fail(w, http.StatusConflict, "in_use", "entry is referenced by existing records", reqID)
	case errors.Is(err, org.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "entry not found", reqID)
	default:
		slog.Error("lookup write failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
	}
}

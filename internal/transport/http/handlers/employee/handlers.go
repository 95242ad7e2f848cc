package employeehandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"peoplehub/internal/domain/employee"
	"peoplehub/internal/transport/http/api"
	"peoplehub/internal/transport/http/middleware"
	"peoplehub/internal/wizard"
)

type Handler struct {
	Service *employee.Service
	Drafts  *wizard.Drafts
}

func NewHandler(service *employee.Service, drafts *wizard.Drafts) *Handler {
	return &Handler{Service: service, Drafts: drafts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/onboarding", func(r chi.Router) {
		r.Get("/", h.HandleDraft)
		r.Delete("/", h.HandleDiscard)
		r.Post("/sections/{section}", h.HandleMergeSection)
		r.Delete("/sections/{section}/{index}", h.HandleRemoveEntry)
		r.Post("/advance", h.HandleAdvance)
		r.Post("/retreat", h.HandleRetreat)
		r.Post("/jump", h.HandleJump)
		r.Post("/submit", h.HandleSubmit)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{id}", h.HandleDelete)
		r.Get("/{id}/profile.pdf", h.HandleProfilePDF)
	})
}

// HandleDraft returns the caller's wizard draft, creating one on first
// visit.
func (h *Handler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}
	api.Success(w, h.Drafts.Get(owner), reqID)
}

func (h *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}
	h.Drafts.Discard(owner)
	api.Success(w, map[string]string{"status": "discarded"}, reqID)
}

func (h *Handler) HandleMergeSection(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}
	section, err := wizard.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "unknown_section", err.Error(), reqID)
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unable to read request body", reqID)
		return
	}

	var issues []wizard.SectionIssues
	draft, err := h.Drafts.Update(owner, func(s wizard.State) (wizard.State, error) {
		next, sectionIssues, err := s.Aggregate.Merge(section, raw)
		if err != nil {
			return s, err
		}
		if len(sectionIssues) > 0 {
			issues = append(issues, wizard.SectionIssues{Section: section.String(), Issues: sectionIssues})
			return s, nil
		}
		s.Aggregate = next
		return s, nil
	})
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "section failed validation", issues, reqID)
		return
	}
	api.Success(w, draft, reqID)
}

func (h *Handler) HandleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}
	section, err := wizard.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "unknown_section", err.Error(), reqID)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_index", "index must be a non-negative integer", reqID)
		return
	}

	draft, err := h.Drafts.Update(owner, func(s wizard.State) (wizard.State, error) {
		next, err := s.Aggregate.RemoveAt(section, index)
		if err != nil {
			return s, err
		}
		s.Aggregate = next
		return s, nil
	})
	if err != nil {
		if errors.Is(err, wizard.ErrNotRepeatable) {
			api.Fail(w, http.StatusBadRequest, "not_repeatable", err.Error(), reqID)
			return
		}
		api.Fail(w, http.StatusBadRequest, "invalid_index", err.Error(), reqID)
		return
	}
	api.Success(w, draft, reqID)
}

// HandleAdvance moves the wizard forward. Advancing past the final
// screen submits the aggregate.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var event wizard.Event
	draft, err := h.Drafts.Update(owner, func(s wizard.State) (wizard.State, error) {
		next, ev := s.Advance()
		event = ev
		return next, nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}
	if event == wizard.EventSubmit {
		h.submit(w, r, owner, draft.State.Aggregate, reqID)
		return
	}
	api.Success(w, draft, reqID)
}

func (h *Handler) HandleRetreat(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var event wizard.Event
	draft, err := h.Drafts.Update(owner, func(s wizard.State) (wizard.State, error) {
		next, ev := s.Retreat()
		event = ev
		return next, nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}
	if event == wizard.EventExit {
		h.Drafts.Discard(owner)
		api.Success(w, map[string]string{"status": "exited"}, reqID)
		return
	}
	api.Success(w, draft, reqID)
}

func (h *Handler) HandleJump(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}
	var payload struct {
		Step string `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	step, err := wizard.ParseMainStep(payload.Step)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "unknown_step", err.Error(), reqID)
		return
	}

	draft, err := h.Drafts.Update(owner, func(s wizard.State) (wizard.State, error) {
		return s.JumpTo(step), nil
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}
	api.Success(w, draft, reqID)
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	owner, reqID, ok := h.owner(w, r)
	if !ok {
		return
	}
	h.submit(w, r, owner, h.Drafts.Get(owner).State.Aggregate, reqID)
}

// submit re-validates the whole aggregate and persists it in one go.
// The draft survives a failed submission so nothing typed is lost.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, owner string, agg wizard.Aggregate, reqID string) {
	cmd, failures := agg.Build()
	if len(failures) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_error", "onboarding form is incomplete", failures, reqID)
		return
	}

	employeeID, account, err := h.Service.Create(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrDesignationNotFound):
			api.Fail(w, http.StatusUnprocessableEntity, "designation_not_found", "designation does not exist", reqID)
		case errors.Is(err, employee.ErrEmailExists):
			api.Fail(w, http.StatusConflict, "email_exists", "email is already registered", reqID)
		default:
			slog.Error("employee create failed", "err", err, "requestId", reqID)
			api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		}
		return
	}

	h.Drafts.Discard(owner)
	api.Created(w, map[string]any{
		"employeeId": employeeID,
		"user":       account,
	}, reqID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("employee list failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	record, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		slog.Error("employee fetch failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}
	api.Success(w, record, reqID)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		slog.Error("employee delete failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) HandleProfilePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.Service.WriteProfilePDF(r.Context(), id, &buf); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		slog.Error("profile pdf failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "employee-"+id+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("profile pdf write failed", "err", err, "requestId", reqID)
	}
}

func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	reqID := middleware.GetRequestID(r.Context())
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return "", reqID, false
	}
	return account.ID, reqID, true
}

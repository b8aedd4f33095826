// Package api exposes HTTP handlers for the school activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
	"example.com/activities/web"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. Activity names arrive
// URL-encoded in the path and are matched case sensitively.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", root)
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.unregister)
	mux.HandleFunc("POST /activities/{name}/unregister", h.unregister)
	mux.HandleFunc("GET /healthz", healthz)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.Static())))
}

// root redirects browsers to the front-end entry page.
func root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	views := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		views[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		observability.RecordSignup("invalid")
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	activity, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordSignup("not_found")
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			observability.RecordSignup("already_registered")
			writeError(w, http.StatusBadRequest, "already_registered", fmt.Sprintf("%s is already signed up for %s", email, name))
		case errors.Is(err, domain.ErrActivityFull):
			observability.RecordSignup("full")
			writeError(w, http.StatusBadRequest, "activity_full", "Activity is full")
		default:
			observability.RecordSignup("error")
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	observability.RecordSignup("success")
	observability.SetRosterSize(activity.Name, len(activity.Participants))
	observability.RecordRosterChange(time.Now().UTC())

	writeJSON(w, http.StatusOK, RosterChangeResponse{
		Message:      fmt.Sprintf("Signed up %s for %s", email, name),
		Participants: len(activity.Participants),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		observability.RecordUnregister("invalid")
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	activity, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordUnregister("not_found")
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrNotRegistered):
			observability.RecordUnregister("not_registered")
			writeError(w, http.StatusBadRequest, "not_registered", fmt.Sprintf("%s is not signed up for %s", email, name))
		default:
			observability.RecordUnregister("error")
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	observability.RecordUnregister("success")
	observability.SetRosterSize(activity.Name, len(activity.Participants))
	observability.RecordRosterChange(time.Now().UTC())

	writeJSON(w, http.StatusOK, RosterChangeResponse{
		Message:      fmt.Sprintf("Unregistered %s from %s", email, name),
		Participants: len(activity.Participants),
	})
}

// ActivityView exposes activity details to clients.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// RosterChangeResponse confirms a signup or unregister.
type RosterChangeResponse struct {
	Message      string `json:"message"`
	Participants int    `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

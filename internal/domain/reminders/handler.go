package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/middleware"
	"dog-walk-tracker/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

const dueDateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, n notify.Notifier) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Post("/", createReminderHandler(svc, n))
		rr.Get("/", listRemindersHandler(svc))
		rr.Post("/{reminderID}/complete", completeReminderHandler(svc, n))
	})
}

// createReminderRequest es el cuerpo para registrar un recordatorio.
type createReminderRequest struct {
	Kind        Kind   `json:"kind" enums:"medication,grooming,vet"`
	DueDate     string `json:"due_date"` // yyyy-MM-dd
	Notes       string `json:"notes,omitempty"`
	CompletedBy string `json:"completed_by,omitempty"` // opcional: registrar ya completado
	CompletedAt string `json:"completed_at,omitempty"` // RFC3339, opcional
}

// completeReminderRequest es el cuerpo para completar un recordatorio.
type completeReminderRequest struct {
	CompletedBy string `json:"completed_by" enums:"Chris,Debbie,Haydn"`
	CompletedAt string `json:"completed_at,omitempty"` // RFC3339, opcional
}

// reminderResponse representa un recordatorio devuelto por la API.
type reminderResponse struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Kind        Kind       `json:"kind"`
	DueDate     string     `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// createReminderHandler godoc
// @Summary Registrar recordatorio
// @Description Crea un recordatorio de cuidado. Rechaza un duplicado si ya existe uno abierto para el mismo (kind, due_date). Requiere sesión de escritura: header `X-Member` (dev) o `Authorization: Bearer <token>`.
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body createReminderRequest true "Datos del recordatorio; due_date en yyyy-MM-dd"
// @Success 201 {object} reminderResponse
// @Failure 400 {string} string "invalid json / due_date inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "ya existe un recordatorio abierto para ese kind y fecha"
// @Router /reminders [post]
func createReminderHandler(svc *Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.Member == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		due, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			http.Error(w, "due_date must be yyyy-MM-dd", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Kind:    req.Kind,
			DueDate: due,
			Notes:   req.Notes,
		}
		if req.CompletedBy != "" {
			m := household.Member(req.CompletedBy)
			in.CompletedBy = &m
		}
		if req.CompletedAt != "" {
			t, err := time.Parse(time.RFC3339, req.CompletedAt)
			if err != nil {
				http.Error(w, "completed_at must be RFC3339", http.StatusBadRequest)
				return
			}
			in.CompletedAt = &t
		}

		rem, err := svc.Create(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateOpen):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		signal(r.Context(), n)
		writeJSON(w, http.StatusCreated, toReminderResponse(rem))
	}
}

// completeReminderHandler godoc
// @Summary Completar recordatorio
// @Description Marca el recordatorio como completado por un integrante. Re-completar sobreescribe quién/cuándo. Requiere sesión de escritura.
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body completeReminderRequest true "Quién lo completó; completed_at opcional"
// @Success 200 {object} reminderResponse
// @Failure 400 {string} string "invalid json / member desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/complete [post]
func completeReminderHandler(svc *Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.Member == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req completeReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var at *time.Time
		if req.CompletedAt != "" {
			t, err := time.Parse(time.RFC3339, req.CompletedAt)
			if err != nil {
				http.Error(w, "completed_at must be RFC3339", http.StatusBadRequest)
				return
			}
			at = &t
		}

		rem, err := svc.Complete(r.Context(), chi.URLParam(r, "reminderID"), household.Member(req.CompletedBy), at)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "reminder not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		signal(r.Context(), n)
		writeJSON(w, http.StatusOK, toReminderResponse(rem))
	}
}

// listRemindersHandler godoc
// @Summary Listar recordatorios
// @Description Lista recordatorios. `open=true` devuelve solo los pendientes (banner de la app); `open=false` solo los completados.
// @Tags reminders
// @Produce json
// @Param open query bool false "Filtrar por estado"
// @Success 200 {array} reminderResponse
// @Failure 500 {string} string "internal error"
// @Router /reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter ListFilter
		if v := r.URL.Query().Get("open"); v != "" {
			open, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "open must be a boolean", http.StatusBadRequest)
				return
			}
			filter.Open = &open
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reminderResponse, 0, len(items))
		for _, rem := range items {
			out = append(out, toReminderResponse(rem))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func signal(ctx context.Context, n notify.Notifier) {
	if n == nil {
		return
	}
	go n.DataChanged(context.WithoutCancel(ctx), notify.TopicReminders)
}

func toReminderResponse(rem Reminder) reminderResponse {
	out := reminderResponse{
		ID:          rem.ID,
		CreatedAt:   rem.CreatedAt,
		Kind:        rem.Kind,
		DueDate:     rem.DueDate.Format(dueDateLayout),
		CompletedAt: rem.CompletedAt,
		Notes:       rem.Notes,
	}
	if rem.CompletedBy != nil {
		out.CompletedBy = string(*rem.CompletedBy)
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

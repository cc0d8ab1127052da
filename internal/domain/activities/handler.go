package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/logs"
	"dog-walk-tracker/internal/middleware"
	"dog-walk-tracker/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, n notify.Notifier) {
	r.Route("/activities", func(ar chi.Router) {
		ar.Post("/", createActivityHandler(svc, n))
		ar.Get("/", listActivitiesHandler(svc))
	})
}

// createActivityRequest es el cuerpo para registrar una tarea completada.
type createActivityRequest struct {
	Kind       Kind   `json:"kind" enums:"toys,dinner"`
	LoggedBy   string `json:"logged_by" enums:"Chris,Debbie,Haydn"`
	AssignedTo string `json:"assigned_to" enums:"Chris,Debbie,Haydn"`
	CreatedAt  string `json:"created_at,omitempty"` // RFC3339, opcional
}

// activityResponse representa una tarea devuelta por la API.
type activityResponse struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Kind       Kind      `json:"kind"`
	LoggedBy   string    `json:"logged_by"`
	AssignedTo string    `json:"assigned_to"`
}

// createActivityHandler godoc
// @Summary Registrar tarea completada
// @Description Registra una tarea del hogar; los puntos se acreditan a `assigned_to`. Requiere sesión de escritura: header `X-Member` (dev) o `Authorization: Bearer <token>`.
// @Tags activities
// @Accept json
// @Produce json
// @Param payload body createActivityRequest true "Datos de la tarea"
// @Success 201 {object} activityResponse
// @Failure 400 {string} string "invalid json / kind o member desconocido"
// @Failure 401 {string} string "unauthorized"
// @Router /activities [post]
func createActivityHandler(svc *Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.Member == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var createdAt *time.Time
		if req.CreatedAt != "" {
			t, err := time.Parse(time.RFC3339, req.CreatedAt)
			if err != nil {
				http.Error(w, "created_at must be RFC3339", http.StatusBadRequest)
				return
			}
			createdAt = &t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Kind:       req.Kind,
			LoggedBy:   household.Member(req.LoggedBy),
			AssignedTo: household.Member(req.AssignedTo),
			CreatedAt:  createdAt,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if n != nil {
			go n.DataChanged(context.WithoutCancel(r.Context()), notify.TopicActivities)
		}
		writeJSON(w, http.StatusCreated, toActivityResponse(a))
	}
}

// listActivitiesHandler godoc
// @Summary Listar tareas por rango
// @Description Devuelve las tareas con created_at dentro de [from, to]. Sin parámetros devuelve los últimos 7 días.
// @Tags activities
// @Produce json
// @Param from query string false "Fecha/hora mínima (RFC3339)"
// @Param to query string false "Fecha/hora máxima (RFC3339)"
// @Success 200 {array} activityResponse
// @Failure 400 {string} string "rango inválido"
// @Router /activities [get]
func listActivitiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := logs.ParseRange(r, 7*24*time.Hour)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListRange(r.Context(), from, to)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]activityResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toActivityResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toActivityResponse(a Activity) activityResponse {
	return activityResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt,
		Kind:       a.Kind,
		LoggedBy:   string(a.LoggedBy),
		AssignedTo: string(a.AssignedTo),
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

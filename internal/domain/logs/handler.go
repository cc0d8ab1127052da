package logs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/middleware"
	"dog-walk-tracker/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, n notify.Notifier) {
	// Lectura abierta (dashboard público); escritura requiere sesión.
	r.Get("/logs", listLogsHandler(svc))

	r.Route("/walks", func(wr chi.Router) {
		wr.Post("/", createWalkHandler(svc, n))
		wr.Patch("/", updateWalkHandler(svc, n))
		wr.Delete("/", deleteWalkHandler(svc, n))
	})
}

// walkRequest es el cuerpo para crear o editar un paseo.
type walkRequest struct {
	LogIDs    []string `json:"log_ids,omitempty"` // requerido en PATCH/DELETE
	Member    string   `json:"member" enums:"Chris,Debbie,Haydn"`
	CreatedAt string   `json:"created_at,omitempty"` // RFC3339, opcional en POST
	Poop      bool     `json:"poop"`
	Pee       bool     `json:"pee"`
	Notes     string   `json:"notes,omitempty"`
}

// logResponse representa un log devuelto por la API.
type logResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Kind      Kind      `json:"kind"`
	Member    string    `json:"member"`
	Notes     string    `json:"notes,omitempty"`
}

// createWalkHandler godoc
// @Summary Registrar un paseo
// @Description Inserta un log por cada tipo marcado (poop y/o pee) con un mismo timestamp. Requiere sesión de escritura: header `X-Member` (dev) o `Authorization: Bearer <token>`.
// @Tags walks
// @Accept json
// @Produce json
// @Param payload body walkRequest true "Datos del paseo; created_at en RFC3339 (opcional)"
// @Success 201 {array} logResponse
// @Failure 400 {string} string "invalid json / paseo vacío / member desconocido"
// @Failure 401 {string} string "unauthorized"
// @Router /walks [post]
func createWalkHandler(svc *Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireWriter(w, r) {
			return
		}

		req, createdAt, ok := decodeWalkRequest(w, r)
		if !ok {
			return
		}

		ls, err := svc.CreateWalk(r.Context(), WalkInput{
			Member:    household.Member(req.Member),
			CreatedAt: createdAt,
			Poop:      req.Poop,
			Pee:       req.Pee,
			Notes:     req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		signal(r.Context(), n, notify.TopicLogs)
		writeJSON(w, http.StatusCreated, toLogResponses(ls))
	}
}

// updateWalkHandler godoc
// @Summary Editar un paseo
// @Description Borra los logs indicados en `log_ids` e inserta logs nuevos con los atributos enviados. Requiere sesión de escritura.
// @Tags walks
// @Accept json
// @Produce json
// @Param payload body walkRequest true "log_ids del paseo a reemplazar + atributos nuevos; created_at requerido"
// @Success 200 {array} logResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /walks [patch]
func updateWalkHandler(svc *Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireWriter(w, r) {
			return
		}

		req, createdAt, ok := decodeWalkRequest(w, r)
		if !ok {
			return
		}
		if createdAt == nil {
			http.Error(w, "created_at must be RFC3339", http.StatusBadRequest)
			return
		}

		ls, err := svc.UpdateWalk(r.Context(), req.LogIDs, WalkInput{
			Member:    household.Member(req.Member),
			CreatedAt: createdAt,
			Poop:      req.Poop,
			Pee:       req.Pee,
			Notes:     req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		signal(r.Context(), n, notify.TopicLogs)
		writeJSON(w, http.StatusOK, toLogResponses(ls))
	}
}

// deleteWalkHandler godoc
// @Summary Borrar un paseo
// @Description Borra todos los logs miembros del paseo. Requiere sesión de escritura.
// @Tags walks
// @Accept json
// @Produce json
// @Param payload body walkRequest true "Solo se usa log_ids"
// @Success 204 {string} string "sin contenido"
// @Failure 400 {string} string "log_ids vacío"
// @Failure 401 {string} string "unauthorized"
// @Router /walks [delete]
func deleteWalkHandler(svc *Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireWriter(w, r) {
			return
		}

		var req walkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.DeleteWalk(r.Context(), req.LogIDs); err != nil {
			writeServiceError(w, err)
			return
		}

		signal(r.Context(), n, notify.TopicLogs)
		w.WriteHeader(http.StatusNoContent)
	}
}

// listLogsHandler godoc
// @Summary Listar logs por rango
// @Description Devuelve los logs con created_at dentro de [from, to]. Sin parámetros devuelve los últimos 7 días.
// @Tags walks
// @Produce json
// @Param from query string false "Fecha/hora mínima (RFC3339)"
// @Param to query string false "Fecha/hora máxima (RFC3339)"
// @Success 200 {array} logResponse
// @Failure 400 {string} string "rango inválido"
// @Router /logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := ParseRange(r, 7*24*time.Hour)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ls, err := svc.ListRange(r.Context(), from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toLogResponses(ls))
	}
}

// ParseRange lee from/to (RFC3339) del query string. Si faltan, usa
// una ventana por defecto que termina ahora. Lo reutiliza el módulo
// de métricas para sus endpoints de lectura.
func ParseRange(r *http.Request, def time.Duration) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.Add(-def)

	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be RFC3339")
		}
		to = t
		from = to.Add(-def)
	}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be RFC3339")
		}
		from = t
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not precede from")
	}
	return from, to, nil
}

func requireWriter(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || claims.Member == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func decodeWalkRequest(w http.ResponseWriter, r *http.Request) (walkRequest, *time.Time, bool) {
	var req walkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return walkRequest{}, nil, false
	}

	var createdAt *time.Time
	if req.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			http.Error(w, "created_at must be RFC3339", http.StatusBadRequest)
			return walkRequest{}, nil, false
		}
		createdAt = &t
	}

	return req, createdAt, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyWalk):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// signal dispara la notificación de cambio sin bloquear la respuesta.
func signal(ctx context.Context, n notify.Notifier, topic string) {
	if n == nil {
		return
	}
	go n.DataChanged(context.WithoutCancel(ctx), topic)
}

func toLogResponses(ls []Log) []logResponse {
	out := make([]logResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, logResponse{
			ID:        l.ID,
			CreatedAt: l.CreatedAt,
			Kind:      l.Kind,
			Member:    string(l.Member),
			Notes:     l.Notes,
		})
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

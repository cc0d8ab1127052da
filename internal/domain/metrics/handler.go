package metrics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"dog-walk-tracker/internal/domain/activities"
	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/logs"
	"dog-walk-tracker/internal/domain/reminders"

	"github.com/go-chi/chi/v5"
)

// Ventanas de lectura de los endpoints de stats. La racha necesita
// historia hacia atrás; 90 días alcanza de sobra para cualquier
// racha real de esta casa.
const (
	streakWindow    = 90 * 24 * time.Hour
	pointsWindow    = 7 * 24 * time.Hour
	defaultAnalytic = 30
)

func RegisterRoutes(r chi.Router, logsSvc *logs.Service, actsSvc *activities.Service, remsSvc *reminders.Service) {
	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/summary", summaryHandler(logsSvc, actsSvc, remsSvc))
		sr.Get("/day", dayHandler(logsSvc))
		sr.Get("/analytics", analyticsHandler(logsSvc))
	})
}

// walkResponse representa un paseo derivado.
type walkResponse struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Member  string    `json:"member"`
	HasPoop bool      `json:"has_poop"`
	HasPee  bool      `json:"has_pee"`
	LogIDs  []string  `json:"log_ids"`
}

// memberStatsResponse son los tallies por integrante.
type memberStatsResponse struct {
	Walks int `json:"walks"`
	Poops int `json:"poops"`
	Pees  int `json:"pees"`
}

// distributionResponse son los conteos por franja horaria.
type distributionResponse struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

// dayStatsResponse resume un día calendario.
type dayStatsResponse struct {
	Date       string         `json:"date"`
	PoopCount  int            `json:"poop_count"`
	PeeCount   int            `json:"pee_count"`
	WalksCount int            `json:"walks_count"`
	Walks      []walkResponse `json:"walks"`
}

// summaryResponse es el resumen del dashboard.
type summaryResponse struct {
	Streak       int                            `json:"streak"`
	WeeklyPoints map[string]int                 `json:"weekly_points"`
	WalkerStats  map[string]memberStatsResponse `json:"walker_stats"`
	TimeOfDay    distributionResponse           `json:"time_of_day"`
	LatestWalk   *walkResponse                  `json:"latest_walk,omitempty"`
}

// analyticsResponse es el resumen de la vista de historial.
type analyticsResponse struct {
	Last7Days  []dayStatsResponse `json:"last_7_days"`
	Last30Days []dayStatsResponse `json:"last_30_days"`

	WalkerStats map[string]memberStatsResponse `json:"walker_stats"`
	BestStreak  int                            `json:"best_streak"`

	AverageWalksPerDay float64 `json:"average_walks_per_day"`
	AveragePoopsPerDay float64 `json:"average_poops_per_day"`

	TimeOfDay distributionResponse `json:"time_of_day"`
}

// summaryHandler godoc
// @Summary Resumen del dashboard
// @Description Racha actual, puntos de la semana, tabla por integrante, distribución horaria y último paseo. Lectura abierta.
// @Tags stats
// @Produce json
// @Success 200 {object} summaryResponse
// @Failure 500 {string} string "internal error"
// @Router /stats/summary [get]
func summaryHandler(logsSvc *logs.Service, actsSvc *activities.Service, remsSvc *reminders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		streakLogs, err := logsSvc.ListRange(r.Context(), now.Add(-streakWindow), now)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		weekFrom := now.Add(-pointsWindow)
		weekLogs := filterFrom(streakLogs, weekFrom)

		acts, err := actsSvc.ListRange(r.Context(), weekFrom, now)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		rems, err := remsSvc.ListCompletedRange(r.Context(), weekFrom, now)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		weekWalks := GroupIntoWalks(weekLogs)

		resp := summaryResponse{
			Streak:       PoopStreak(streakLogs, DefaultMinPoopsPerDay, now),
			WeeklyPoints: memberKeys(WeeklyPoints(weekLogs, acts, rems, DefaultPoints)),
			WalkerStats:  toWalkerStatsResponse(WalkerStats(weekLogs, weekWalks)),
			TimeOfDay:    toDistributionResponse(TimeOfDayDistribution(weekLogs)),
		}
		if lw, ok := LatestWalk(streakLogs); ok {
			wr := toWalkResponse(lw)
			resp.LatestWalk = &wr
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// dayHandler godoc
// @Summary Resumen de un día
// @Description Conteos y paseos de un día calendario. `date` en yyyy-MM-dd; sin parámetro devuelve hoy.
// @Tags stats
// @Produce json
// @Param date query string false "Día a consultar (yyyy-MM-dd)"
// @Success 200 {object} dayStatsResponse
// @Failure 400 {string} string "date inválido"
// @Failure 500 {string} string "internal error"
// @Router /stats/day [get]
func dayHandler(logsSvc *logs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := time.Now()
		if v := r.URL.Query().Get("date"); v != "" {
			t, err := time.ParseInLocation("2006-01-02", v, time.Local)
			if err != nil {
				http.Error(w, "date must be yyyy-MM-dd", http.StatusBadRequest)
				return
			}
			date = t
		}

		// Traemos el día con margen de un día a cada lado: el filtro
		// fino por día calendario lo hace BuildDayStats.
		ls, err := logsSvc.ListRange(r.Context(), date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toDayStatsResponse(BuildDayStats(ls, date)))
	}
}

// analyticsHandler godoc
// @Summary Analytics de una ventana
// @Description Serie diaria, promedios, mejor racha y distribución de los últimos `days` días (default 30, máximo 90). Lectura abierta.
// @Tags stats
// @Produce json
// @Param days query int false "Tamaño de la ventana en días"
// @Success 200 {object} analyticsResponse
// @Failure 500 {string} string "internal error"
// @Router /stats/analytics [get]
func analyticsHandler(logsSvc *logs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := defaultAnalytic
		if v := r.URL.Query().Get("days"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
				days = n
			}
		}

		now := time.Now()
		ls, err := logsSvc.ListRange(r.Context(), now.AddDate(0, 0, -days), now)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		a := BuildAnalytics(ls, now, days)

		writeJSON(w, http.StatusOK, analyticsResponse{
			Last7Days:          toDayStatsResponses(a.Last7Days),
			Last30Days:         toDayStatsResponses(a.Last30Days),
			WalkerStats:        toWalkerStatsResponse(a.WalkerStats),
			BestStreak:         a.BestStreak,
			AverageWalksPerDay: a.AverageWalksPerDay,
			AveragePoopsPerDay: a.AveragePoopsPerDay,
			TimeOfDay:          toDistributionResponse(a.TimeOfDay),
		})
	}
}

func filterFrom(ls []logs.Log, from time.Time) []logs.Log {
	out := make([]logs.Log, 0, len(ls))
	for _, l := range ls {
		if !l.CreatedAt.Before(from) {
			out = append(out, l)
		}
	}
	return out
}

func memberKeys(in map[household.Member]int) map[string]int {
	out := make(map[string]int, len(in))
	for m, v := range in {
		out[string(m)] = v
	}
	return out
}

func toWalkerStatsResponse(in map[household.Member]MemberStats) map[string]memberStatsResponse {
	out := make(map[string]memberStatsResponse, len(in))
	for m, s := range in {
		out[string(m)] = memberStatsResponse{Walks: s.Walks, Poops: s.Poops, Pees: s.Pees}
	}
	return out
}

func toDistributionResponse(d Distribution) distributionResponse {
	return distributionResponse{
		Morning:   d.Morning,
		Afternoon: d.Afternoon,
		Evening:   d.Evening,
		Night:     d.Night,
	}
}

func toWalkResponse(walk Walk) walkResponse {
	ids := make([]string, 0, len(walk.Logs))
	for _, l := range walk.Logs {
		ids = append(ids, l.ID)
	}
	return walkResponse{
		ID:      walk.ID,
		Time:    walk.Time,
		Member:  string(walk.Member),
		HasPoop: walk.HasPoop,
		HasPee:  walk.HasPee,
		LogIDs:  ids,
	}
}

func toDayStatsResponse(d DayStats) dayStatsResponse {
	walks := make([]walkResponse, 0, len(d.Walks))
	for _, walk := range d.Walks {
		walks = append(walks, toWalkResponse(walk))
	}
	return dayStatsResponse{
		Date:       d.Date.Format("2006-01-02"),
		PoopCount:  d.PoopCount,
		PeeCount:   d.PeeCount,
		WalksCount: d.WalksCount,
		Walks:      walks,
	}
}

func toDayStatsResponses(ds []DayStats) []dayStatsResponse {
	out := make([]dayStatsResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDayStatsResponse(d))
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

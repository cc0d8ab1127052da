package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "dog-walk-tracker/docs"
	mem "dog-walk-tracker/internal/adapters/storage/memory"
	pg "dog-walk-tracker/internal/adapters/storage/postgres"
	"dog-walk-tracker/internal/domain/activities"
	"dog-walk-tracker/internal/domain/logs"
	"dog-walk-tracker/internal/domain/metrics"
	"dog-walk-tracker/internal/domain/reminders"
	"dog-walk-tracker/internal/middleware"
	"dog-walk-tracker/internal/platform/logger"
	"dog-walk-tracker/internal/ports/auth"
	"dog-walk-tracker/internal/ports/notify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.WriteVerifier // puede ser nil (modo dev: header X-Member)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: notifier de cambios. Si es nil, no se notifica nada.
	Notifier notify.Notifier

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.MemberContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		logRepo      logs.Repository
		activityRepo activities.Repository
		reminderRepo reminders.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else if opts.Logger != nil {
				opts.Logger.Warn("postgres unavailable, falling back to memory", map[string]any{
					"err": err.Error(),
				})
			}
		}
	}

	if db != nil {
		logRepo = pg.NewLogsRepo(db)
		activityRepo = pg.NewActivitiesRepo(db)
		reminderRepo = pg.NewRemindersRepo(db)
	} else {
		logRepo = mem.NewLogRepo()
		activityRepo = mem.NewActivityRepo()
		reminderRepo = mem.NewReminderRepo()
	}

	n := opts.Notifier
	if n == nil {
		n = notify.Nop{}
	}

	// Services por módulo
	logsSvc := logs.NewService(logRepo)
	activitiesSvc := activities.NewService(activityRepo)
	remindersSvc := reminders.NewService(reminderRepo)

	// Rutas por módulo
	logs.RegisterRoutes(r, logsSvc, n)
	activities.RegisterRoutes(r, activitiesSvc, n)
	reminders.RegisterRoutes(r, remindersSvc, n)
	metrics.RegisterRoutes(r, logsSvc, activitiesSvc, remindersSvc)

	return r
}

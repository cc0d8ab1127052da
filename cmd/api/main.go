package main

import (
	"net/http"
	"os"
	"time"

	"dog-walk-tracker/internal/adapters/notify/webhook"
	"dog-walk-tracker/internal/platform/logger"
	"dog-walk-tracker/internal/ports/notify"
	"dog-walk-tracker/internal/router"
)

// @title dog-walk-tracker API
// @version 1.0
// @description Backend familiar para registrar paseos, tareas y recordatorios del perro, con métricas agregadas (paseos derivados, rachas, puntos semanales).
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var n notify.Notifier = notify.Nop{}
	if url := os.Getenv("NOTIFY_WEBHOOK_URL"); url != "" {
		wh, err := webhook.New(url, log)
		if err != nil {
			log.Warn("ignoring invalid NOTIFY_WEBHOOK_URL", map[string]any{"err": err.Error()})
		} else {
			n = wh
		}
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: nil, // sin verifier para modo dev (header X-Member)
		Notifier:     n,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"livestock-breeding/internal/adapters/auth/iam"
	"livestock-breeding/internal/platform/logger"
	"livestock-breeding/internal/ports/auth"
	"livestock-breeding/internal/router"
)

func main() {
	// .env opcional para dev local; en deploy las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Verifier solo si el IAM está configurado; sin eso, modo dev
	// (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("IAM_BASE_URL"); baseURL != "" {
		client, err := iam.NewClient(iam.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("IAM_API_KEY"),
		})
		if err != nil {
			log.Error("iam client init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		if client.IsConfigured() {
			verifier = iam.NewVerifier(client)
		}
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
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
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

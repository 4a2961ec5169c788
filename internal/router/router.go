package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "livestock-breeding/docs"
	"livestock-breeding/internal/adapters/notify/dispatcher"
	mem "livestock-breeding/internal/adapters/storage/memory"
	pg "livestock-breeding/internal/adapters/storage/postgres"
	"livestock-breeding/internal/domain/animals"
	"livestock-breeding/internal/domain/breeding"
	"livestock-breeding/internal/domain/healthrecords"
	"livestock-breeding/internal/middleware"
	"livestock-breeding/internal/platform/logger"
	"livestock-breeding/internal/ports/auth"
	"livestock-breeding/internal/ports/notify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: hook de notificaciones. Si es nil se intenta armar
	// desde env (NOTIFY_BASE_URL / NOTIFY_API_KEY); sin eso, sin hook.
	Notifier notify.Notifier

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	var (
		animalsRepo animals.Repository
		breedRepo   breeding.Repository
		healthRepo  healthrecords.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		animalsRepo = pg.NewAnimalsRepo(db)
		breedRepo = pg.NewBreedingRepo(db)
		healthRepo = pg.NewHealthRecordsRepo(db)
	} else {
		animalsRepo = mem.NewAnimalsRepo()
		breedRepo = mem.NewBreedingRepo()
		healthRepo = mem.NewHealthRecordsRepo()
	}

	notifier := opts.Notifier
	if notifier == nil {
		if baseURL := os.Getenv("NOTIFY_BASE_URL"); baseURL != "" {
			client, err := dispatcher.NewClient(dispatcher.Config{
				BaseURL: baseURL,
				APIKey:  os.Getenv("NOTIFY_API_KEY"),
			})
			if err == nil && client.IsConfigured() {
				notifier = client
			}
		}
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalsRepo)
	breedingSvc := breeding.NewService(breedRepo, notifier, log)
	healthSvc := healthrecords.NewService(healthRepo)

	// El estado efectivo cruza padrón con montas; se arma aquí para no
	// acoplar animals al paquete breeding.
	effStatus := func(ctx context.Context, ownerUserID string, roster []animals.Animal) (map[string]animals.HealthStatus, error) {
		records, err := breedingSvc.ListByOwner(ctx, ownerUserID)
		if err != nil {
			return nil, err
		}
		out := make(map[string]animals.HealthStatus, len(roster))
		for _, a := range roster {
			out[a.ID] = breeding.EffectiveStatus(a, records)
		}
		return out, nil
	}

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, effStatus)
	breeding.RegisterRoutes(r, breedingSvc, animalsSvc)
	healthrecords.RegisterRoutes(r, healthSvc, animalsSvc)

	return r
}

package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/config"
	"github.com/ackerman1984/d-sports-sub002/internal/infrastructure/repository/postgres"
	"github.com/ackerman1984/d-sports-sub002/internal/interfaces/httpapi"
	idgen "github.com/ackerman1984/d-sports-sub002/internal/platform/id"
	"github.com/ackerman1984/d-sports-sub002/internal/platform/logging"
	"github.com/ackerman1984/d-sports-sub002/internal/usecase"
)

// OpenDB connects to Postgres with OpenTelemetry instrumentation on
// every query.
func OpenDB(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("database connected", "db", dbNameFromURL(cfg.DBURL))

	return db, nil
}

func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	seasonRepo := postgres.NewSeasonRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	fieldRepo := postgres.NewFieldRepository(db)
	timeSlotRepo := postgres.NewTimeSlotRepository(db)
	overrideRepo := postgres.NewSaturdayOverrideRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	restRepo := postgres.NewRestCounterRepository(db)
	runRepo := postgres.NewGenerationRunRepository(db)

	generationSvc := usecase.NewGenerationService(
		seasonRepo,
		teamRepo,
		fieldRepo,
		timeSlotRepo,
		overrideRepo,
		scheduleRepo,
		restRepo,
		runRepo,
		idgen.NewRandomGenerator(),
	)
	scheduleSvc := usecase.NewScheduleService(seasonRepo, scheduleRepo, restRepo, runRepo)
	batchSvc := usecase.NewBatchGenerationService(seasonRepo, generationSvc)

	handler := httpapi.NewHandler(generationSvc, scheduleSvc, batchSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

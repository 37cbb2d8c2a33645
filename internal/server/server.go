package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lexicaforge/backend/internal/queue"
	mid "github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/internal/storage"
	"github.com/lexicaforge/backend/internal/util"
	"github.com/lexicaforge/backend/pkg/cognates"
	"github.com/lexicaforge/backend/pkg/logger"
	"github.com/lexicaforge/backend/pkg/morphemes"
	"github.com/lexicaforge/backend/pkg/textsim"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// RunMigrations applies the SQL migrations in migrationsPath to the database
// behind DATABASE_URL. A database that is already up to date is not an error.
func RunMigrations(migrationsPath string) {
	m, err := migrate.New(migrationsPath, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Failed to open migrations", "err", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("Failed to run migrations", "err", err)
	}
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	jwksUrl := util.GetEnv("AUTH_URL") + "/jwks"
	k, err := keyfunc.NewDefault([]string{jwksUrl})
	if err != nil {
		logger.Fatal("Failed to load jwks keys", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	RunMigrations(util.GetEnvString("MIGRATIONS_PATH", "file://migrations"))

	conn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()
	conn.Config().AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	que := queue.Init()
	defer que.Close()
	ch, err := que.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	if err := queue.SetupQueues(ch, queue.QueueNames()); err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	s3 := storage.NewS3Client(ctx)

	analyzer, err := buildAnalyzer()
	if err != nil {
		logger.Fatal("Failed to build morpheme analyzer", "err", err)
	}
	detector, err := cognates.NewDetector(cognates.DefaultDetectorParams())
	if err != nil {
		logger.Fatal("Failed to build cognate detector", "err", err)
	}

	masterAPIKey := util.GetEnv("MASTER_API_KEY")
	masterUserID, _ := strconv.ParseInt(util.GetEnv("MASTER_USER_ID"), 10, 64)
	masterUserRole := util.GetEnv("MASTER_USER_ROLE")

	app := &mid.App{
		DBConn:         conn,
		Queue:          ch,
		Key:            &k,
		S3:             s3,
		Text:           textsim.NewShared(),
		Analyzer:       analyzer,
		Detector:       detector,
		MasterAPIKey:   masterAPIKey,
		MasterUserID:   masterUserID,
		MasterUserRole: masterUserRole,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// buildAnalyzer loads the affix table from AFFIX_TABLE_PATH when set,
// otherwise the built-in English defaults are used.
func buildAnalyzer() (*morphemes.Analyzer, error) {
	if path := util.GetEnv("AFFIX_TABLE_PATH"); path != "" {
		table, err := morphemes.LoadAffixes(path)
		if err != nil {
			return nil, err
		}
		return morphemes.NewAnalyzer(table), nil
	}
	return morphemes.NewAnalyzer(morphemes.DefaultAffixes()), nil
}

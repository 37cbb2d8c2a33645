package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/lexicaforge/backend/pkg/cognates"
	"github.com/lexicaforge/backend/pkg/morphemes"
	"github.com/lexicaforge/backend/pkg/textsim"
)

type AppUser struct {
	UserID      int64
	Role        string
	Permissions []string
}

// App bundles the process-wide dependencies handlers pull from the request
// context.
type App struct {
	DBConn         *pgxpool.Pool
	Queue          *amqp091.Channel
	Key            *keyfunc.Keyfunc
	S3             *s3.Client
	Text           *textsim.Shared
	Analyzer       *morphemes.Analyzer
	Detector       *cognates.Detector
	MasterAPIKey   string
	MasterUserID   int64
	MasterUserRole string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

// AppContextMiddleware wraps every request context in an AppContext carrying
// the shared application dependencies.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}

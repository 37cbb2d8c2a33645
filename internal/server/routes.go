package server

import (
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Stateless text analysis routes
	apiRoutes.POST("/text/tokenize", routes.TokenizeTextHandler)
	apiRoutes.POST("/text/entities", routes.ExtractEntitiesHandler)
	apiRoutes.POST("/text/similarity", routes.TextSimilarityHandler)
	apiRoutes.POST("/text/stats", routes.TextStatsHandler)
	apiRoutes.POST("/text/patterns", routes.FindPatternsHandler)

	// Stateless word analysis routes
	apiRoutes.POST("/words/morphemes", routes.AnalyzeMorphemesHandler)
	apiRoutes.POST("/words/cognates", routes.ScoreCognatesHandler)

	// Lexicon routes
	apiRoutes.GET("/lexicon/words", routes.GetWordsHandler)
	apiRoutes.POST("/lexicon/words", routes.CreateWordsHandler, middleware.RequirePermission("lexicon.write"))
	apiRoutes.GET("/lexicon/words/:id", routes.GetWordHandler)
	apiRoutes.DELETE("/lexicon/words/:id", routes.DeleteWordHandler, middleware.RequirePermission("lexicon.delete"))
	apiRoutes.GET("/lexicon/words/:id/cognates", routes.GetWordCognatesHandler)

	// Ingestion routes
	apiRoutes.POST("/ingest", routes.CreateIngestJobHandler, middleware.RequirePermission("ingest.run"))
	apiRoutes.GET("/ingest/:id", routes.GetIngestJobHandler)
	apiRoutes.GET("/ingest/:id/pages/:headword", routes.GetIngestPageHandler)
	apiRoutes.DELETE("/ingest/:id/pages/:headword", routes.DeleteIngestPageHandler, middleware.RequirePermission("ingest.run"))
}

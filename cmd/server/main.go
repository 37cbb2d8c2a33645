package main

import (
	"github.com/lexicaforge/backend/internal/server"
	"github.com/lexicaforge/backend/internal/util"
	"github.com/lexicaforge/backend/pkg/logger"
	"github.com/lexicaforge/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}

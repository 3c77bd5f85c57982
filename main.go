package main

import (
	"os"

	"localxp-api/core/logger"
	"localxp-api/core/server"
)

// @title LocalXP API
// @version 1.0
// @description Catalog, filtering and simulated booking of local experiences in Waterloo Region.

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}

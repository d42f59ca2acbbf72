package app

import (
	"flag"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"finch/internal/app/bootstrap"
	"finch/internal/app/server"
	"finch/internal/config"
)

const defaultPort = 8080

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	log.SetLevel(log.DebugLevel)

	portFlag := flag.Int("port", defaultPort, "Port to listen on")
	productionFlag := flag.Bool("production", false, "Run in production mode")
	flag.Parse()

	config.SetProductionMode(*productionFlag)
	if config.InProductionMode {
		log.SetLevel(log.InfoLevel)
	}

	port := resolvePort("FINCH_PORT", "PORT", *portFlag)

	classifier, err := bootstrap.Setup()
	if err != nil {
		return err
	}

	handlers, err := server.NewHandlers(classifier)
	if err != nil {
		return err
	}

	return server.OpenRoutes(port, handlers)
}

func resolvePort(primaryEnv, legacyEnv string, fallback int) int {
	if port := readPort(primaryEnv); port != 0 {
		return port
	}
	if port := readPort(legacyEnv); port != 0 {
		return port
	}
	return fallback
}

func readPort(envKey string) int {
	raw := os.Getenv(envKey)
	if raw == "" {
		return 0
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port == 0 {
		log.Warn("invalid port override", "env", envKey, "value", raw)
		return 0
	}
	return port
}

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/config"
	"github.com/timewright/timeapi-mcp/internal/logger"
	"github.com/timewright/timeapi-mcp/internal/server"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
	"github.com/timewright/timeapi-mcp/internal/tools"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("timeapi-mcp")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	api, err := timeapi.New(timeapi.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream client")
	}

	version := buildVersion
	if version == "" {
		version = "dev"
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "timeapi-mcp", Version: version}, nil)

	registry := tools.NewRegistry(mcpServer, api, log)
	registry.RegisterAll()

	keys := registry.Keys()
	log.Info().Strs("tools", keys).Int("count", len(keys)).Msg("registered entrypoints")

	if cfg.Server.Stdio {
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatal().Err(err).Msg("stdio server stopped")
		}
		return
	}

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	srv := server.New(server.NewRouter(mcpHandler), cfg.HTTPAddress(), log)
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

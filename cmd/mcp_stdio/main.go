// Package main runs the fitplanner MCP server over stdio for local MCP
// clients. The same server is mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/config"
	"github.com/2beens/fitplanner/internal/db"
	"github.com/2beens/fitplanner/internal/mcp"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/sessions"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userIDFlag := flag.String("user", "", "id of the user whose data is exposed")
	flag.Parse()

	userID, err := uuid.Parse(*userIDFlag)
	if err != nil {
		log.Fatalf("invalid -user: %v", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITPLANNER_DB_PASSWORD"),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// read only: no generation, so no profiles or ai requester
	sessionsService := sessions.NewService(sessions.NewServiceParams{
		Repo:        sessions.NewRepo(dbPool),
		Location:    cfg.Location(),
		CacheSizeMB: 1,
	})
	svc := mcp.NewContextService(mcp.NewContextServiceParams{
		Weeks:    sessionsService,
		Progress: progress.NewRepo(dbPool),
		Location: cfg.Location(),
	})
	s := mcp.NewServer(mcp.NewHandler(svc), "stdio")

	if err := server.ServeStdio(s, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return auth.WithUserID(ctx, userID)
	})); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/zenith-app/zenith-server/internal/api"
	"github.com/zenith-app/zenith-server/internal/chat"
	"github.com/zenith-app/zenith-server/internal/config"
	"github.com/zenith-app/zenith-server/internal/database"
	"github.com/zenith-app/zenith-server/internal/stats"
)

const defaultSigningKey = "wT0phFUusHZIrDhL9bUKPUhwaxKhpi/SaI6PtgB+MgU="

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, strings.Split(value, ",")...)
	return nil
}

var (
	addr           string
	dsn            string
	signingKey     string
	allowedOrigins stringSliceFlag
	adminRooms     stringSliceFlag
	maxRoomHistory int
	idleRoomTTL    time.Duration
)

func main() {
	flag.StringVar(&addr, "addr", "localhost:8000", "server address")
	flag.StringVar(&dsn, "dsn", "host=localhost user=postgres password=postgres dbname=postgres sslmode=disable", "database connection string")
	flag.StringVar(&signingKey, "signing-key", defaultSigningKey, "base64 encoded signing key")
	flag.Var(&allowedOrigins, "allowed-origins", "comma-separated list of allowed origins for CORS")
	flag.Var(&adminRooms, "admin-rooms", "comma-separated list of rooms restricted to the admin role")
	flag.IntVar(&maxRoomHistory, "max-room-history", config.DefaultMaxRoomHistory, "maximum messages retained per room (0 for unbounded)")
	flag.DurationVar(&idleRoomTTL, "idle-room-ttl", config.DefaultIdleRoomTTL, "how long an empty room is kept before eviction")
	flag.Parse()

	logger := log.New(os.Stderr, "[zenith] ", log.LstdFlags)

	cfg, err := config.NewConfig(addr, dsn, signingKey, allowedOrigins, adminRooms, maxRoomHistory, idleRoomTTL)
	if err != nil {
		logger.Fatal("config:", err)
	}

	dbConn, err := database.NewPgZenithRepository(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Fatal("db close:", err)
		}
	}()

	if err := dbConn.Migrate(); err != nil {
		logger.Fatal("db migrate:", err)
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	chatServer, err := chat.NewChatServer(
		logger,
		chat.NewAccessPolicy(cfg.AdminRooms, cfg.AdminRole),
		cfg.MaxRoomHistory,
		cfg.IdleRoomTTL,
		statsUpdater,
	)
	if err != nil {
		logger.Fatal("new chat server:", err)
	}

	srv := api.NewZenithApp(mux, logger, chatServer, dbConn, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	go chatServer.Run()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutting down chat server...")
	if err := chatServer.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("chat server shutdown:", err)
	}

	logger.Println("shutdown complete")
}

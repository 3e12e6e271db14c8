package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/zenith-app/zenith-server/internal/types"
)

const (
	DefaultMaxRoomHistory = 500
	DefaultIdleRoomTTL    = 5 * time.Minute
)

type Config struct {
	ServerAddr     string
	DatabaseDSN    string
	SigningKey     []byte
	AllowedOrigins []string
	// AdminRooms lists room ids restricted to AdminRole.
	AdminRooms []string
	AdminRole  string
	// MaxRoomHistory caps the per-room message log; 0 disables the cap.
	MaxRoomHistory int
	// IdleRoomTTL is how long an empty room is kept before eviction.
	IdleRoomTTL time.Duration
}

func decodeSigningSecret(base64Secret string) ([]byte, error) {
	if base64Secret == "" {
		return nil, fmt.Errorf("signing secret cannot be empty")
	}
	return base64.StdEncoding.DecodeString(base64Secret)
}

func NewConfig(serverAddr, databaseDSN, base64Secret string, allowedOrigins, adminRooms []string, maxRoomHistory int, idleRoomTTL time.Duration) (*Config, error) {
	if serverAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if databaseDSN == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}
	if maxRoomHistory < 0 {
		return nil, fmt.Errorf("max room history cannot be negative")
	}
	if idleRoomTTL <= 0 {
		idleRoomTTL = DefaultIdleRoomTTL
	}

	signingKey, err := decodeSigningSecret(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode signing secret: %w", err)
	}

	if len(adminRooms) == 0 {
		adminRooms = []string{"ceo-chat"}
	}

	return &Config{
		ServerAddr:     serverAddr,
		DatabaseDSN:    databaseDSN,
		SigningKey:     signingKey,
		AllowedOrigins: allowedOrigins,
		AdminRooms:     adminRooms,
		AdminRole:      types.RoleCEO,
		MaxRoomHistory: maxRoomHistory,
		IdleRoomTTL:    idleRoomTTL,
	}, nil
}

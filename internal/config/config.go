package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/stevenyany/Connect-4/internal/domain"
)

type Config struct {
	Columns     int
	Rows        int
	RunLength   int
	PieceAGlyph string
	PieceBGlyph string
	EmptyGlyph  string
	LogFile     string
}

func LoadConfig() *Config {
	// Board
	columns := GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns)
	rows := GetEnvAsInt("BOARD_ROWS", domain.DefaultRows)
	runLength := GetEnvAsInt("RUN_LENGTH", domain.DefaultRunLength)

	// Rendering
	pieceA := GetEnvAsGlyph("PIECE_A_GLYPH", "X")
	pieceB := GetEnvAsGlyph("PIECE_B_GLYPH", "O")
	empty := GetEnvAsGlyph("EMPTY_GLYPH", ".")

	return &Config{
		Columns:     columns,
		Rows:        rows,
		RunLength:   runLength,
		PieceAGlyph: pieceA,
		PieceBGlyph: pieceB,
		EmptyGlyph:  empty,
		LogFile:     GetEnv("LOG_FILE", ""),
	}
}

// Rules converts the board settings into game rules. The values are not
// validated here; domain.NewGame rejects bad ones.
func (c *Config) Rules() domain.Rules {
	return domain.Rules{
		Columns:   c.Columns,
		Rows:      c.Rows,
		RunLength: c.RunLength,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsGlyph reads a single display character; anything else falls back.
func GetEnvAsGlyph(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if len([]rune(value)) != 1 {
		log.Printf("[CONFIG] Glyph %s must be a single character, got %q, using default: %s", key, value, defaultValue)
		return defaultValue
	}
	return value
}

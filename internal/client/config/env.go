package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/studentdiary/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAPIURL   = "DIARY_API_URL"
	EnvDBPath   = "DIARY_DB_PATH"
	EnvLogLevel = "DIARY_LOG_LEVEL"

	defaultEnvFile = ".env"
)

// parseEnv overlays cfg with DIARY_* environment variables.
//
// Before reading, a dotenv file is loaded into the process environment: the
// one named by -e/-env, or ./.env when present. Variables already set in the
// environment are not overwritten by the file. A missing default file is
// ignored; a missing explicit file panics, like the JSON loader.
func parseEnv(cfg *Config, args []string) {
	path := flagx.EnvFile(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}

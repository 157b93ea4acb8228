package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studentdiary/internal/flagx"
	"github.com/dmitrijs2005/studentdiary/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// "10s" style strings or integer nanoseconds. Absent fields leave the
// current value untouched.
type JsonConfig struct {
	APIBaseURL            string          `json:"api_base_url"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	DeadlineCheckInterval *timex.Duration `json:"deadline_check_interval"`
	DatabasePath          string          `json:"database_path"`
	LogLevel              string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DeadlineCheckInterval != nil {
		cfg.DeadlineCheckInterval = jc.DeadlineCheckInterval.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-i int      deadline check interval (seconds)
//	-d string   session database path
//	-l string   log level (debug, info, warn, error)
//
// Only these flags are looked at, so the config, env-file and test runner
// flags pass through untouched. A malformed value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("diary", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.DeadlineCheckInterval.Seconds()), "deadline check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.DeadlineCheckInterval = time.Duration(*interval) * time.Second
}

package devserver

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/studentdiary/internal/flagx"
)

// Config holds runtime settings for the development backend.
//
// SecretKey signs the HS256 tokens; the default is for local use only.
type Config struct {
	Addr      string
	SecretKey string
	TokenTTL  time.Duration
	// DeadlineWindow is how far ahead check-deadlines looks.
	DeadlineWindow time.Duration
	Seed           bool
	LogLevel       string
}

func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.SecretKey = "diary-dev-secret"
	c.TokenTTL = 24 * time.Hour
	c.DeadlineWindow = 24 * time.Hour
	c.Seed = true
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then flags from args:
//
//	-a string   listen address
//	-s string   JWT secret
//	-t int      token validity (minutes)
//	-w int      deadline window (hours)
//	-seed bool  load demo users and subjects
//	-l string   log level
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg, args)
	return cfg
}

func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-w", "-seed", "-l"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "JWT secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	window := fs.Int("w", int(cfg.DeadlineWindow.Hours()), "deadline window (in hours)")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "load demo data")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	cfg.DeadlineWindow = time.Duration(*window) * time.Hour
}

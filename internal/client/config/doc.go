// Package config loads runtime configuration for the diary CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults ((*Config).LoadDefaults).
//  2. DIARY_API_URL, DIARY_DB_PATH and DIARY_LOG_LEVEL from the environment,
//     after loading ./.env or the file given with -e/-env.
//  3. A JSON file given with -c/-config:
//
//     {
//       "api_base_url": "http://localhost:5000",
//       "request_timeout": "10s",
//       "deadline_check_interval": "60s",
//       "database_path": "diary.db",
//       "log_level": "debug"
//     }
//
//  4. Flags -a, -t, -i, -d and -l.
package config

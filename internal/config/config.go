// Package config loads run defaults from the environment.
//
// Every setting maps to a CRYSPACK_* variable. A .env file in the
// working directory is honoured when present, letting a project pin
// its optimisation defaults without wrapping the binary in a script.
// Command-line flags override whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds the environment-derived defaults for a run.
type Settings struct {
	// LogLevel is the textual log level from CRYSPACK_LOG_LEVEL.
	LogLevel string `env:"CRYSPACK_LOG_LEVEL" envDefault:"info"`
	// Outfile is the default output path stem from CRYSPACK_OUTFILE.
	Outfile string `env:"CRYSPACK_OUTFILE" envDefault:"packing"`
	// Replications is the number of independent starts from CRYSPACK_REPLICATIONS.
	Replications int `env:"CRYSPACK_REPLICATIONS" envDefault:"100"`
	// Workers bounds the optimisation worker pool from CRYSPACK_WORKERS.
	// Zero means one worker per replication.
	Workers int `env:"CRYSPACK_WORKERS" envDefault:"0"`
	// Steps is the total Monte-Carlo step count from CRYSPACK_STEPS.
	Steps int `env:"CRYSPACK_STEPS" envDefault:"1000"`
	// InnerSteps is the steps per temperature update from CRYSPACK_INNER_STEPS.
	InnerSteps int `env:"CRYSPACK_INNER_STEPS" envDefault:"1000"`
	// KtStart is the initial annealing temperature from CRYSPACK_KT_START.
	KtStart float64 `env:"CRYSPACK_KT_START" envDefault:"0.1"`
	// KtFinish is the final annealing temperature from CRYSPACK_KT_FINISH.
	KtFinish float64 `env:"CRYSPACK_KT_FINISH" envDefault:"0.001"`
	// MaxStepSize is the largest Monte-Carlo move from CRYSPACK_MAX_STEP_SIZE.
	MaxStepSize float64 `env:"CRYSPACK_MAX_STEP_SIZE" envDefault:"0.01"`
	// ServeAddr is the live viewer listen address from CRYSPACK_SERVE_ADDR.
	ServeAddr string `env:"CRYSPACK_SERVE_ADDR" envDefault:"localhost:8080"`
	// GroupsFile optionally points at extra wallpaper group definitions
	// from CRYSPACK_GROUPS_FILE.
	GroupsFile string `env:"CRYSPACK_GROUPS_FILE"`
}

// Load reads .env (when present) and the CRYSPACK_* environment into
// a Settings value.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("config: load .env: %w", err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("config: parse environment: %w", err)
	}

	return s, nil
}

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/host"
	"github.com/alnah/go-md2docx/internal/logger"
)

// Environment variable names.
const (
	envHost       = "MD2DOCX_HOST"
	envTimeout    = "MD2DOCX_TIMEOUT"
	envSofficeBin = host.EnvSofficeBin
)

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envHost:       true,
	envTimeout:    true,
	envSofficeBin: true,
}

// envConfig holds configuration from environment variables.
// Values sit between command-line flags and the config file in precedence.
type envConfig struct {
	Host    string        // MD2DOCX_HOST: preferred host application
	Timeout time.Duration // MD2DOCX_TIMEOUT: host conversion timeout
}

// loadEnvConfig reads MD2DOCX_* variables. Invalid values are reported on
// log and ignored.
func loadEnvConfig(env *Environment, log *logger.Logger) *envConfig {
	cfg := &envConfig{}

	if name := env.getenv(envHost); name != "" {
		if err := host.ValidateName(name); err != nil {
			log.Warn("ignoring environment variable", "name", envHost, "err", err)
		} else {
			cfg.Host = strings.ToLower(name)
		}
	}

	if timeout := env.getenv(envTimeout); timeout != "" {
		d, err := parseTimeout(timeout)
		if err != nil {
			log.Warn("ignoring environment variable", "name", envTimeout, "err", err)
		} else {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized MD2DOCX_* variables.
// Helps catch typos like MD2DOCX_HOTS.
func warnUnknownEnvVars(env *Environment, w io.Writer) {
	if env.Environ == nil {
		return
	}
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, "MD2DOCX_") {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

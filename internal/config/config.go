package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "clientbase-backend/internal/util/env"
	"clientbase-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     required:"true"`

	HTTPPort  string `env:"HTTP_PORT"  envDefault:"4010"`
	JwtSecret string `env:"JWT_SECRET" required:"true"`

	// Optional redis used to track stale views; empty disables it and the
	// in-memory fallback takes over.
	RedisAddr string `env:"REDIS_ADDR"`

	// Team accounts are behind a feature flag; when disabled the workspace
	// loader never queries memberships.
	EnableTeamAccounts bool `env:"ENABLE_TEAM_ACCOUNTS" envDefault:"true"`

	// Account-creation / invitation policy knobs. Zero values mean "no rule
	// configured" and the policy evaluators default-allow.
	MaxPendingInvitations     int    `env:"MAX_PENDING_INVITATIONS"`
	ForbiddenAccountNameWords string `env:"FORBIDDEN_ACCOUNT_NAME_WORDS"`

	InvitationExpiryDays int `env:"INVITATION_EXPIRY_DAYS" envDefault:"7"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment &&
		env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.JwtSecret == "" {
		log.Error("JWT_SECRET is empty")
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	UploadDir       string
	MigrationsPath  string
	LogLevel        string
	OperatorWorkers int
	AutoImport      bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("postgres_address", "localhost")
	v.SetDefault("postgres_port", "5433")
	v.SetDefault("postgres_db", "postgres")
	v.SetDefault("postgres_username", "postgres")
	v.SetDefault("postgres_password", "testpassword")
	v.SetDefault("http_port", "9446")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("migrations_path", "file://migrations")
	v.SetDefault("log_level", "info")
	v.SetDefault("operator_workers", 1)
	v.SetDefault("auto_import", true)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	env := Config{
		PostgresAddress:  v.GetString("postgres_address"),
		PostgresPort:     v.GetString("postgres_port"),
		PostgresDB:       v.GetString("postgres_db"),
		PostgresUsername: v.GetString("postgres_username"),
		PostgresPassword: v.GetString("postgres_password"),
		HTTPPort:         v.GetString("http_port"),
		UploadDir:        v.GetString("upload_dir"),
		MigrationsPath:   v.GetString("migrations_path"),
		LogLevel:         v.GetString("log_level"),
		OperatorWorkers:  v.GetInt("operator_workers"),
		AutoImport:       v.GetBool("auto_import"),
	}

	if env.OperatorWorkers < 1 {
		return nil, fmt.Errorf("OPERATOR_WORKERS must be at least 1, got %d", env.OperatorWorkers)
	}
	if strings.TrimSpace(env.UploadDir) == "" {
		return nil, fmt.Errorf("UPLOAD_DIR must not be empty")
	}

	return &env, nil
}

// PostgresURL builds the DSN shared by storage and the migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

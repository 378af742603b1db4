package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"KOREAT_APP_NAME":                os.Getenv("KOREAT_APP_NAME"),
		"KOREAT_APP_ENV":                 os.Getenv("KOREAT_APP_ENV"),
		"KOREAT_APP_PORT":                os.Getenv("KOREAT_APP_PORT"),
		"KOREAT_DATABASE_DRIVER":         os.Getenv("KOREAT_DATABASE_DRIVER"),
		"KOREAT_DATABASE_HOST":           os.Getenv("KOREAT_DATABASE_HOST"),
		"KOREAT_DATABASE_PORT":           os.Getenv("KOREAT_DATABASE_PORT"),
		"KOREAT_DATABASE_USER":           os.Getenv("KOREAT_DATABASE_USER"),
		"KOREAT_DATABASE_PASSWORD":       os.Getenv("KOREAT_DATABASE_PASSWORD"),
		"KOREAT_DATABASE_DBNAME":         os.Getenv("KOREAT_DATABASE_DBNAME"),
		"KOREAT_DATABASE_SSLMODE":        os.Getenv("KOREAT_DATABASE_SSLMODE"),
		"KOREAT_DATABASE_MAX_OPEN_CONNS": os.Getenv("KOREAT_DATABASE_MAX_OPEN_CONNS"),
		"KOREAT_DATABASE_MAX_IDLE_CONNS": os.Getenv("KOREAT_DATABASE_MAX_IDLE_CONNS"),
		"KOREAT_ENRICHMENT_MODEL":        os.Getenv("KOREAT_ENRICHMENT_MODEL"),
		"KOREAT_JWT_SECRET":              os.Getenv("KOREAT_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "koreat-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "koreat", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "sonar", cfg.Enrichment.Model)
		assert.Equal(t, 3, cfg.Enrichment.MaxRetries)
	})

	t.Run("loads values from environment variables with KOREAT prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("KOREAT_APP_NAME", "test-app")
		os.Setenv("KOREAT_APP_ENV", "testing")
		os.Setenv("KOREAT_APP_PORT", "9000")
		os.Setenv("KOREAT_DATABASE_HOST", "testdb.local")
		os.Setenv("KOREAT_DATABASE_PORT", "5433")
		os.Setenv("KOREAT_DATABASE_USER", "testuser")
		os.Setenv("KOREAT_DATABASE_PASSWORD", "testpass")
		os.Setenv("KOREAT_DATABASE_DBNAME", "testdb")
		os.Setenv("KOREAT_DATABASE_SSLMODE", "require")
		os.Setenv("KOREAT_ENRICHMENT_MODEL", "sonar-pro")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "sonar-pro", cfg.Enrichment.Model)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("KOREAT_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("accepts sqlite driver in development", func(t *testing.T) {
		clearEnv()
		os.Setenv("KOREAT_DATABASE_DRIVER", "sqlite")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "koreat.db", cfg.Database.Path)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("KOREAT_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("KOREAT_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("KOREAT_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"KOREAT_APP_ENV":             os.Getenv("KOREAT_APP_ENV"),
		"KOREAT_JWT_SECRET":          os.Getenv("KOREAT_JWT_SECRET"),
		"KOREAT_DATABASE_DRIVER":     os.Getenv("KOREAT_DATABASE_DRIVER"),
		"KOREAT_DATABASE_PASSWORD":   os.Getenv("KOREAT_DATABASE_PASSWORD"),
		"KOREAT_DATABASE_SSLMODE":    os.Getenv("KOREAT_DATABASE_SSLMODE"),
		"KOREAT_ENRICHMENT_API_KEY":  os.Getenv("KOREAT_ENRICHMENT_API_KEY"),
		"KOREAT_TRANSLATION_API_KEY": os.Getenv("KOREAT_TRANSLATION_API_KEY"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	setValidProductionBase := func() {
		os.Setenv("KOREAT_APP_ENV", "production")
		os.Setenv("KOREAT_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("KOREAT_DATABASE_PASSWORD", "secure-password")
		os.Setenv("KOREAT_DATABASE_SSLMODE", "require")
		os.Setenv("KOREAT_ENRICHMENT_API_KEY", "pplx-test-key")
		os.Setenv("KOREAT_TRANSLATION_API_KEY", "deepl-test-key")
	}

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("KOREAT_JWT_SECRET")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("KOREAT_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("KOREAT_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("KOREAT_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects sqlite driver in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("KOREAT_DATABASE_DRIVER", "sqlite")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlite is for development only")
	})

	t.Run("requires upstream API keys in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("KOREAT_ENRICHMENT_API_KEY")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "enrichment.api_key is required in production")

		setValidProductionBase()
		os.Unsetenv("KOREAT_TRANSLATION_API_KEY")

		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "translation.api_key is required in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		// URL-encoded password should be in the DSN
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

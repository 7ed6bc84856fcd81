package config_test

import (
	"testing"

	"github.com/ChaseHampton/headstones/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDbConfig_Defaults(t *testing.T) {
	for _, name := range []string{"DB_DRIVER", "DB_DIR", "DB_FILE_SUFFIX", "DB_PORT", "DATABASE_URL"} {
		t.Setenv(name, "")
	}

	cfg := config.NewDbConfig()

	assert.Equal(t, config.DriverSQLite, cfg.Driver)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "_be.db", cfg.FileSuffix)
	assert.Equal(t, 1433, cfg.Port)
	assert.NoError(t, cfg.Validate())
}

func TestNewDbConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlserver")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PORT", "14330")
	t.Setenv("DB_NAME", "Headstones")

	cfg := config.NewDbConfig()

	assert.Equal(t, config.DriverSQLServer, cfg.Driver)
	assert.Equal(t, "db.local", cfg.Host)
	assert.Equal(t, 14330, cfg.Port)
	assert.NoError(t, cfg.Validate())
}

func TestDbConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DbConfig
		wantErr bool
	}{
		{"sqlite ok", config.DbConfig{Driver: "sqlite", Dir: "/data", FileSuffix: "_be.db"}, false},
		{"sqlite without suffix", config.DbConfig{Driver: "sqlite", Dir: "/data"}, true},
		{"sqlserver without host", config.DbConfig{Driver: "sqlserver", DBName: "x"}, true},
		{"postgres ok", config.DbConfig{Driver: "postgres", URL: "postgres://localhost/x"}, false},
		{"postgres without url", config.DbConfig{Driver: "postgres"}, true},
		{"unknown driver", config.DbConfig{Driver: "access"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDefaultInt_BadValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	assert.Equal(t, 8080, config.LoadDefaultInt("SERVER_PORT", 8080))
}

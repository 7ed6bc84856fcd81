package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite    = "sqlite"
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "postgres"
)

type Config struct {
	Db     DbConfig
	Log    LogConfig
	Server ServerConfig
}

type DbConfig struct {
	Driver string
	// Dir and FileSuffix locate the back-end file for the sqlite driver.
	Dir        string
	FileSuffix string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	URL        string
}

type LogConfig struct {
	Level string
	// File, when set, receives log output instead of stderr.
	File string
}

type ServerConfig struct {
	Port int
}

// NewConfig reads the environment, after loading a .env file from the working
// directory when one exists.
func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Db:  NewDbConfig(),
		Log: LogConfig{
			Level: LoadDefaultString("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		Server: ServerConfig{
			Port: LoadDefaultInt("SERVER_PORT", 8080),
		},
	}
}

func NewDbConfig() DbConfig {
	return DbConfig{
		Driver:     LoadDefaultString("DB_DRIVER", DriverSQLite),
		Dir:        LoadDefaultString("DB_DIR", "."),
		FileSuffix: LoadDefaultString("DB_FILE_SUFFIX", "_be.db"),
		Host:       os.Getenv("DB_HOST"),
		Port:       LoadDefaultInt("DB_PORT", 1433),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		URL:        os.Getenv("DATABASE_URL"),
	}
}

func (c DbConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Dir == "" || c.FileSuffix == "" {
			return fmt.Errorf("sqlite driver needs both a directory and a file suffix")
		}
	case DriverSQLServer:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("sqlserver driver needs DB_HOST and DB_NAME")
		}
	case DriverPostgres:
		if c.URL == "" {
			return fmt.Errorf("postgres driver needs DATABASE_URL")
		}
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}
	return nil
}

func LoadDefaultInt(name string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return defaultValue
	}
	return value
}

func LoadDefaultString(name string, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	return value
}

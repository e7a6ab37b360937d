package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	CORSAllowOrigins string
	// AcademicYearMin and AcademicYearMax bound the academic years the
	// class group form accepts.
	AcademicYearMin int
	AcademicYearMax int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SGDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "SGDE API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("academic_year.min", 2024)
	v.SetDefault("academic_year.max", 2030)

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		CORSAllowOrigins: v.GetString("cors.allow_origins"),
		AcademicYearMin:  v.GetInt("academic_year.min"),
		AcademicYearMax:  v.GetInt("academic_year.max"),
	}

	if cfg.AcademicYearMin > cfg.AcademicYearMax {
		return Config{}, fmt.Errorf("academic year bounds inverted: %d > %d", cfg.AcademicYearMin, cfg.AcademicYearMax)
	}

	return cfg, nil
}

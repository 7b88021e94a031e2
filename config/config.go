package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner specifics
	Planner        PlannerConfig
	Genetic        GeneticConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig holds scheduling and parsing settings.
type PlannerConfig struct {
	Timezone        string
	SQLitePath      string
	DefaultDuration int // minutes assumed when a task names none
	CacheTTLMinutes int
}

// GeneticConfig holds the optimizer knobs.
type GeneticConfig struct {
	PopulationSize     int
	Generations        int
	MutationRate       float64
	CrossoverRate      float64
	EliteSize          int
	TournamentSize     int
	PlateauGenerations int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.SQLitePath = viper.GetString("planner.sqlite_path")
	cfg.Planner.DefaultDuration = viper.GetInt("planner.default_duration")
	cfg.Planner.CacheTTLMinutes = viper.GetInt("planner.cache_ttl_minutes")

	// Genetic optimizer
	cfg.Genetic.PopulationSize = viper.GetInt("genetic.population_size")
	cfg.Genetic.Generations = viper.GetInt("genetic.generations")
	cfg.Genetic.MutationRate = viper.GetFloat64("genetic.mutation_rate")
	cfg.Genetic.CrossoverRate = viper.GetFloat64("genetic.crossover_rate")
	cfg.Genetic.EliteSize = viper.GetInt("genetic.elite_size")
	cfg.Genetic.TournamentSize = viper.GetInt("genetic.tournament_size")
	cfg.Genetic.PlateauGenerations = viper.GetInt("genetic.plateau_generations")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 30)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.timezone", "Local")
	viper.SetDefault("planner.sqlite_path", "data/planner.db")
	viper.SetDefault("planner.default_duration", 45)
	viper.SetDefault("planner.cache_ttl_minutes", 10)

	viper.SetDefault("genetic.population_size", 100)
	viper.SetDefault("genetic.generations", 50)
	viper.SetDefault("genetic.mutation_rate", 0.1)
	viper.SetDefault("genetic.crossover_rate", 0.9)
	viper.SetDefault("genetic.elite_size", 20)
	viper.SetDefault("genetic.tournament_size", 5)
	viper.SetDefault("genetic.plateau_generations", 15)
}

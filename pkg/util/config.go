package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func init() {
	viper.SetDefault("GRAPH_DIR", "./data/graph")
	viper.SetDefault("SEARCH_DISTANCE", 500.0)
	viper.SetDefault("ELEVATION_STEP", 5.0)
	viper.SetDefault("ROUTE_CACHE_SIZE", 50)
	viper.SetDefault("SPATIAL_INDEX", "sectors")
	viper.SetDefault("COST_FUNCTION", "city_bike")
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("LOG_LEVEL", "info")
}

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

type EngineConfig struct {
	GraphDir       string
	SearchDistance float64
	ElevationStep  float64
	RouteCacheSize int
	SpatialIndex   string
	CostFunction   string
	APIPort        int
	APITimeout     time.Duration
	RateLimit      bool
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewEngineConfig() EngineConfig {
	return EngineConfig{
		GraphDir:       viper.GetString("GRAPH_DIR"),
		SearchDistance: viper.GetFloat64("SEARCH_DISTANCE"),
		ElevationStep:  viper.GetFloat64("ELEVATION_STEP"),
		RouteCacheSize: viper.GetInt("ROUTE_CACHE_SIZE"),
		SpatialIndex:   viper.GetString("SPATIAL_INDEX"),
		CostFunction:   viper.GetString("COST_FUNCTION"),
		APIPort:        viper.GetInt("API_PORT"),
		APITimeout:     viper.GetDuration("API_TIMEOUT"),
		RateLimit:      viper.GetBool("RATE_LIMIT"),
		RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
	}
}

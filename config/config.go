
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	BankPath string     `mapstructure:"BANK_PATH"`
	Seed     string     `mapstructure:"SEED"`
	Exam     ExamConfig `mapstructure:"EXAM"`
}

// ExamConfig holds the default exam shape used by the CLI entrypoint
type ExamConfig struct {
	NumQuestions int      `mapstructure:"NUM_QUESTIONS"`
	EasyWeight   int      `mapstructure:"EASY_WEIGHT"`
	MediumWeight int      `mapstructure:"MEDIUM_WEIGHT"`
	HardWeight   int      `mapstructure:"HARD_WEIGHT"`
	Topics       []string `mapstructure:"TOPICS"`
}

// LoadConfig loads configuration from environment variables and config.yaml
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("BANK_PATH", "") // empty means the built-in sample bank
	viper.SetDefault("SEED", "")      // empty means a time-based seed
	viper.SetDefault("EXAM.NUM_QUESTIONS", 5)
	viper.SetDefault("EXAM.EASY_WEIGHT", 1)
	viper.SetDefault("EXAM.MEDIUM_WEIGHT", 1)
	viper.SetDefault("EXAM.HARD_WEIGHT", 1)
	viper.SetDefault("EXAM.TOPICS", []string{})

	// Read from config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("config.yaml not found, using environment variables and defaults")
		} else {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	// Override with environment variables (e.g., EXAMGEN_BANK_PATH)
	viper.SetEnvPrefix("EXAMGEN")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

package chinaid

import "github.com/dmitrymomot/chinaid/pkg/config"

// Config holds the Checker settings read from the environment.
type Config struct {
	LogLevel        string `env:"CHINAID_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"CHINAID_LOG_FORMAT" envDefault:"json"`
	MaskNumbers     bool   `env:"CHINAID_MASK_NUMBERS" envDefault:"true"`
	DefaultLanguage string `env:"CHINAID_DEFAULT_LANGUAGE" envDefault:"en"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

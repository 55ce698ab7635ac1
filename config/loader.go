package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "/etc/fedxml/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return LoadAppConfigBytes(data)
}

// LoadAppConfigBytes parses, validates, and installs a configuration document.
func LoadAppConfigBytes(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Receive); err != nil {
		return err
	}
	Config = cfg
	applyDefaults()
	return nil
}

func applyDefaults() {
	if Config.Server.Port == 0 {
		Config.Server.Port = 6180
	}
	if Config.Receive.MaxBodyBytes == 0 {
		Config.Receive.MaxBodyBytes = 1 << 20
	}
}

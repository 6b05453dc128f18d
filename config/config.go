// Package config handles server configuration and the persisted dashboard
// document.
//
// Server settings are loaded from config.yml and validated using struct tags.
// The dashboard (station watches and display settings) is a single JSON
// document, read once at startup and rewritten in full on every mutation.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Server contains the server configuration loaded from config.yml.
type Server struct {
	Port              int    `yaml:"port" validate:"gt=0"`
	TfLBaseURL        string `yaml:"tflBaseURL" validate:"omitempty,url"`
	HuxleyBaseURL     string `yaml:"huxleyBaseURL" validate:"omitempty,url"`
	RequestTimeoutMS  int    `yaml:"requestTimeoutMS" validate:"gte=0"`
	ShutdownTimeoutMS int    `yaml:"shutdownTimeoutMS" validate:"gte=0"`
	DashboardFile     string `yaml:"dashboardFile"`
}

func defaultServer() Server {
	return Server{
		Port:          8093,
		DashboardFile: "dashboard.json",
	}
}

// LoadServer loads and validates the server configuration. A missing file is
// not an error; the defaults stand on their own.
func LoadServer(path string) (Server, error) {
	cfg := defaultServer()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Server{}, errors.Wrap(err, "reading server config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Server{}, errors.Wrap(err, "parsing server config")
	}
	if cfg.Port == 0 {
		cfg.Port = defaultServer().Port
	}
	if cfg.DashboardFile == "" {
		cfg.DashboardFile = defaultServer().DashboardFile
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return Server{}, errors.Wrap(err, "invalid server config")
	}
	return cfg, nil
}

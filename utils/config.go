package utils

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config Server configuration loaded from a YAML file.
type Config struct {
	Server struct {
		Port      string `yaml:"port"`
		JwtSecret string `yaml:"jwt_secret"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		Dsn    string `yaml:"dsn"`
	} `yaml:"database"`
	Inference struct {
		URL string `yaml:"url"`
	} `yaml:"inference"`
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
}

// ParseFlags Parse the command line for the config path and debug mode
func ParseFlags() (string, bool, error) {
	var configPath string
	var debugMode bool

	flag.StringVar(&configPath, "config", "config.yaml", "path to config file")
	flag.BoolVar(&debugMode, "debug", false, "run in debug mode")
	flag.Parse()

	if err := validateConfigPath(configPath); err != nil {
		return "", false, err
	}
	return configPath, debugMode, nil
}

func validateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// NewConfig Load and validate the configuration at path
func NewConfig(path string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return config, nil
}

// applyDefaults Fill in the values a minimal config file leaves out.
func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Dsn == "" {
		c.Database.Dsn = "retinoscope.sqlite"
	}
	if c.Viewport.Width == 0 {
		c.Viewport.Width = 800
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = 600
	}
}

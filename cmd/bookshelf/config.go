package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the bookshelf server configuration, read from a YAML file.
// AWS credentials come from the environment (optionally via .env), never
// from this file.
type Config struct {
	Listen string `yaml:"listen"`

	AWS struct {
		Region string `yaml:"region"`
	} `yaml:"aws"`

	Tables struct {
		Books   string `yaml:"books"`
		Reviews string `yaml:"reviews"`
	} `yaml:"tables"`

	Reference struct {
		Attribute string `yaml:"attribute"`
		Index     string `yaml:"index"`
	} `yaml:"reference"`
}

func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.Tables.Books == "" {
		return nil, fmt.Errorf("config: tables.books must be set")
	}
	if cfg.Tables.Reviews == "" {
		cfg.Tables.Reviews = cfg.Tables.Books
	}
	if cfg.Reference.Attribute == "" {
		cfg.Reference.Attribute = "ParentId"
	}
	return &cfg, nil
}

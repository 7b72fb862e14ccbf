package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
)

type Config struct {
	Backend        string `envconfig:"PERSISTENCE_BACKEND" default:"badger"`
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	StateDir       string `envconfig:"STATE_DIR" default:"./data"`
	// INSPECT_COLOURS highlights the section headers
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if cfg.BadgerFilepath == "" {
		cfg.BadgerFilepath = database.DefaultPath
	}
	return cfg, err
}

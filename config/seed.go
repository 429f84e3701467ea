package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the inventory a fresh system starts with.
type Seed struct {
	Ingredients []SeedIngredient `yaml:"ingredients"`
}

type SeedIngredient struct {
	Name         string         `yaml:"name"`
	Price        string         `yaml:"price"`
	Quantity     int            `yaml:"quantity"`
	Type         string         `yaml:"type"`
	ServingSizes map[string]int `yaml:"serving_sizes"`
	Unit         string         `yaml:"unit"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	seed := &Seed{}
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

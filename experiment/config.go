package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knaplab/generator"
)

// Config describes one experiment: how to generate its instances and which
// solvers to run on them.
//
// Example (YAML; the JSON form is accepted too):
//
//	- name: small
//	  num_items: 20
//	  capacity: 100
//	  weights_range: [1, 30]
//	  costs_range: [1, 100]
//	  generations: 50
//	  algorithms: ["Dynamic", "Greedy"]
//	  seed: 7
type Config struct {
	Name         string   `yaml:"name" json:"name"`
	NumItems     int      `yaml:"num_items" json:"num_items"`
	Capacity     uint64   `yaml:"capacity" json:"capacity"`
	WeightsRange []uint64 `yaml:"weights_range" json:"weights_range"`
	CostsRange   []uint64 `yaml:"costs_range" json:"costs_range"`
	Generations  int      `yaml:"generations" json:"generations"`
	Algorithms   []string `yaml:"algorithms" json:"algorithms"` // empty: all
	Seed         int64    `yaml:"seed" json:"seed"`
}

// LoadConfigs reads and parses an experiment file.
func LoadConfigs(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: read %s: %w", path, err)
	}
	cfgs, err := ParseConfigs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfgs, nil
}

// ParseConfigs decodes a YAML (or JSON) list of experiments, applies
// defaults and validates each entry.
func ParseConfigs(data []byte) ([]Config, error) {
	var cfgs []Config
	if err := yaml.Unmarshal(data, &cfgs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i := range cfgs {
		cfgs[i].applyDefaults(i)
		if err := cfgs[i].Validate(); err != nil {
			return nil, fmt.Errorf("experiment %d: %w", i, err)
		}
	}

	return cfgs, nil
}

func (c *Config) applyDefaults(index int) {
	if c.Generations == 0 {
		c.Generations = 1
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("experiment-%d", index+1)
	}
}

// Validate reports ErrInvalidConfig for malformed ranges or counts.
func (c Config) Validate() error {
	if c.NumItems < 0 {
		return fmt.Errorf("%w: num_items=%d", ErrInvalidConfig, c.NumItems)
	}
	if c.Generations < 1 {
		return fmt.Errorf("%w: generations=%d", ErrInvalidConfig, c.Generations)
	}
	if len(c.WeightsRange) != 2 {
		return fmt.Errorf("%w: weights_range needs [min, max], got %v", ErrInvalidConfig, c.WeightsRange)
	}
	if len(c.CostsRange) != 2 {
		return fmt.Errorf("%w: costs_range needs [min, max], got %v", ErrInvalidConfig, c.CostsRange)
	}
	if err := c.GeneratorConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// GeneratorConfig converts c to the generator's shape. c must have two-element
// ranges; Validate checks that.
func (c Config) GeneratorConfig() generator.Config {
	return generator.Config{
		NumItems: c.NumItems,
		Capacity: c.Capacity,
		Weights:  generator.Range{Min: c.WeightsRange[0], Max: c.WeightsRange[1]},
		Values:   generator.Range{Min: c.CostsRange[0], Max: c.CostsRange[1]},
	}
}

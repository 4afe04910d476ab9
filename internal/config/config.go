package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// RunSpec names one {task, agent, graph} input triple to load and the
// algorithm(s) to run it through.
type RunSpec struct {
	Name       string   `yaml:"name"`
	TaskFile   string   `yaml:"task_file"`
	AgentFile  string   `yaml:"agent_file"`
	GraphFile  string   `yaml:"graph_file"`
	Algorithms []string `yaml:"algorithms"`
}

// Config is the batch-run configuration decoded from configs/config.yaml.
// The Port/Database/JWT sections are only consulted by cmd/server; the
// batch CLI (cmd/batch) only reads Runs/FaultRatio/Weights/RNGSeed.
type Config struct {
	Port     string    `yaml:"port"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	JWT struct {
		Secret     string `yaml:"secret"`
		Expiration string `yaml:"expiration"`
	} `yaml:"jwt"`
	FaultRatio float64   `yaml:"fault_ratio"`
	Weights    struct {
		A float64 `yaml:"a"`
		B float64 `yaml:"b"`
	} `yaml:"weights"`
	RNGSeed int64     `yaml:"rng_seed"`
	Runs    []RunSpec `yaml:"runs"`
}

// LoadConfig opens and decodes a YAML config file.
func LoadConfig(filePath string) (*Config, error) {
	config := &Config{}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// InitConfig loads the default config path, fatal on error.
func InitConfig() *Config {
	config, err := LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	return config
}

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration shared by the three process roles. Flags
// override file values.
type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	ObjStore  ObjStoreConfig  `yaml:"objstore"`
	Worker    WorkerConfig    `yaml:"worker"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type SchedulerConfig struct {
	Address            string `yaml:"address"`
	DeliveryRetryLimit int    `yaml:"delivery_retry_limit"`
}

type ObjStoreConfig struct {
	Address          string `yaml:"address"`
	SchedulerAddress string `yaml:"scheduler_address"`
	ChunkSizeBytes   int    `yaml:"chunk_size_bytes"`
}

type WorkerConfig struct {
	Address          string `yaml:"address"`
	SchedulerAddress string `yaml:"scheduler_address"`
	ObjStoreAddress  string `yaml:"objstore_address"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// DefaultConfig returns the single-node defaults.
func DefaultConfig() Config {
	return Config{
		Scheduler: SchedulerConfig{Address: "127.0.0.1:10001"},
		ObjStore: ObjStoreConfig{
			Address:          "127.0.0.1:20001",
			SchedulerAddress: "127.0.0.1:10001",
		},
		Worker: WorkerConfig{
			Address:          "127.0.0.1:40001",
			SchedulerAddress: "127.0.0.1:10001",
			ObjStoreAddress:  "127.0.0.1:20001",
		},
		Metrics: MetricsConfig{Enabled: false, Port: 9090},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

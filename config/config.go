package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "seat-booking-cli"
	configFileName = "config.yaml"
)

type Config struct {
	DataDir    string    `yaml:"data_dir"`
	OutputsDir string    `yaml:"outputs_dir"`
	ExportFile string    `yaml:"export_file"`
	ChartFile  string    `yaml:"chart_file"`
	Log        LogConfig `yaml:"log"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default mirrors the layout the tool has always used: data/ and outputs/
// relative to the working directory.
func Default() Config {
	return Config{
		DataDir:    "data",
		OutputsDir: "outputs",
		ExportFile: "bookings.csv",
		ChartFile:  "bookings_chart.png",
		Log: LogConfig{
			File:  "seatbook.log",
			Level: "info",
		},
	}
}

// ExportPath is where the booking ledger CSV is written.
func (c Config) ExportPath() string {
	return resolve(c.DataDir, c.ExportFile)
}

func (c Config) ChartPath() string {
	return resolve(c.OutputsDir, c.ChartFile)
}

func (c Config) LogPath() string {
	return resolve(c.DataDir, c.Log.File)
}

func resolve(dir string, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Load reads defaults, then the YAML file at path (or the user config file
// when path is empty and it exists), then SEATBOOK_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = userConfigPath()
	}
	if path != "" {
		if err := mergeFile(&cfg, path, explicit); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("SEATBOOK_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SEATBOOK_OUTPUTS_DIR")); v != "" {
		cfg.OutputsDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SEATBOOK_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if strings.TrimSpace(c.OutputsDir) == "" {
		return errors.New("outputs_dir is required")
	}
	if strings.TrimSpace(c.ExportFile) == "" {
		return errors.New("export_file is required")
	}
	if strings.TrimSpace(c.ChartFile) == "" {
		return errors.New("chart_file is required")
	}
	if strings.TrimSpace(c.Log.File) == "" {
		return errors.New("log.file is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, configFileName)
}

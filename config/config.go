package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Meta  Meta  `yaml:"meta" validate:"required"`
	Store Store `yaml:"store" validate:"required"`
}

type Meta struct {
	Port        int    `yaml:"port" default:"8000" comment:"Port to run the server on" validate:"required,min=1,max=65535"`
	APIURL      string `yaml:"api_url" default:"http://localhost:8000" comment:"Public URL of the API, used in the OpenAPI document" validate:"required,url"`
	BasePath    string `yaml:"base_path" default:"/api/bot" comment:"Path prefix the bot routes are mounted under. Empty mounts them at the root" validate:"omitempty,startswith=/,endsnotwith=/"`
	MaxBodySize int64  `yaml:"max_body_size" default:"10240" comment:"Maximum request body size in bytes" validate:"required,min=1"`
}

type Store struct {
	Path string `yaml:"path" default:"data/bot_config.json" comment:"Bot config file. Relative paths are resolved against the directory of the executable" validate:"required"`
}

// Load reads and validates the YAML config at path.
func Load(path string, v *validator.Validate) (*Config, error) {
	f, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(f, &cfg)

	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	err = v.Struct(cfg)

	if err != nil {
		return nil, fmt.Errorf("configError: %w", err)
	}

	return &cfg, nil
}

// ResolveStorePath returns the store path, anchoring relative paths at baseDir.
func (c *Config) ResolveStorePath(baseDir string) string {
	if filepath.IsAbs(c.Store.Path) {
		return c.Store.Path
	}

	return filepath.Join(baseDir, c.Store.Path)
}

// InstallDir is the directory holding the running executable.
func InstallDir() (string, error) {
	exe, err := os.Executable()

	if err != nil {
		return "", err
	}

	exe, err = filepath.EvalSymlinks(exe)

	if err != nil {
		return "", err
	}

	return filepath.Dir(exe), nil
}

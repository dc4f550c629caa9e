package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	FrontendTUI  = "tui"
	FrontendLine = "line"
)

type Config struct {
	VFSRoot       string `yaml:"vfsRoot"`
	StartupScript string `yaml:"startupScript"`
	Frontend      string `yaml:"frontend"`
	LogFile       string `yaml:"logFile"`
	Debug         bool   `yaml:"debug"`
	TraceFile     string `yaml:"traceFile"`

	User string `yaml:"-"`
	Host string `yaml:"-"`
}

// Default returns the configuration used when nothing else is supplied: the
// working directory as the virtual root and the TUI front end.
func Default() *Config {
	root, err := os.Getwd()
	if err != nil {
		root = "/"
	}

	return &Config{
		VFSRoot:  root,
		Frontend: FrontendTUI,
		User:     currentUser(),
		Host:     currentHost(),
	}
}

// Load layers the optional YAML file at path and then the environment on
// top of the defaults. An empty path falls back to VFS_TERMINAL_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("VFS_TERMINAL_CONFIG")
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.VFSRoot = getEnv("VFS_ROOT", cfg.VFSRoot)
	cfg.StartupScript = getEnv("VFS_STARTUP_SCRIPT", cfg.StartupScript)
	cfg.Frontend = getEnv("VFS_FRONTEND", cfg.Frontend)
	cfg.LogFile = getEnv("VFS_LOG_FILE", cfg.LogFile)
	cfg.Debug = getEnvBool("VFS_DEBUG", cfg.Debug)
	cfg.TraceFile = getEnv("VFS_TRACE_FILE", cfg.TraceFile)

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendTUI, FrontendLine:
	default:
		return fmt.Errorf("unknown frontend %q: want %q or %q", c.Frontend, FrontendTUI, FrontendLine)
	}

	if c.VFSRoot == "" {
		return fmt.Errorf("vfs root cannot be empty")
	}
	return nil
}

// Prompt is the shell prompt shown before each command.
func (c *Config) Prompt() string {
	return fmt.Sprintf("%s@%s:~$ ", c.User, c.Host)
}

// Title is the window title.
func (c *Config) Title() string {
	return fmt.Sprintf("Emulator - [%s@%s]", c.User, c.Host)
}

func currentUser() string {
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}
	return getEnv("USER", "user")
}

func currentHost() string {
	if name := os.Getenv("COMPUTERNAME"); name != "" {
		return name
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "localhost"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

// Package config carga la configuración del servidor y del cliente desde un
// fichero YAML o TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath es la variable de entorno con la ruta por defecto del fichero.
const EnvConfigPath = "STEP7_CONFIG"

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

type Config struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Tool    ToolConfig    `yaml:"tool" toml:"tool"`
	Journal JournalConfig `yaml:"journal" toml:"journal"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Client  ClientConfig  `yaml:"client" toml:"client"`
}

type ServerConfig struct {
	Host string `yaml:"host" toml:"host"`
	Port int    `yaml:"port" toml:"port"`
	// 0 desactiva la API de administración.
	AdminPort int `yaml:"admin_port" toml:"admin_port"`
}

type ToolConfig struct {
	Backend       string   `yaml:"backend" toml:"backend"`
	Command       string   `yaml:"command" toml:"command"`
	Args          []string `yaml:"args" toml:"args"`
	WorkDir       string   `yaml:"work_dir" toml:"work_dir"`
	MaxConcurrent int      `yaml:"max_concurrent" toml:"max_concurrent"`
	ListTimeout   string   `yaml:"list_timeout" toml:"list_timeout"`
	ActionTimeout string   `yaml:"action_timeout" toml:"action_timeout"`
}

type JournalConfig struct {
	Type     string `yaml:"type" toml:"type"`
	Path     string `yaml:"path" toml:"path"`
	Capacity int    `yaml:"capacity" toml:"capacity"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

type ClientConfig struct {
	Address string `yaml:"address" toml:"address"`
	Timeout string `yaml:"timeout" toml:"timeout"`
}

// Default devuelve la configuración usada cuando no hay fichero.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Path devuelve la ruta indicada, o la de STEP7_CONFIG si está vacía.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load lee el fichero de path. Una ruta vacía devuelve Default(). El
// formato se elige por extensión: .toml para TOML y el resto como YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	data = []byte(expandEnvVars(string(data)))

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 50051
	}
	if c.Tool.Backend == "" {
		c.Tool.Backend = "exec"
	}
	if c.Tool.Backend == "exec" && c.Tool.Command == "" {
		c.Tool.Command = "S7Cli.exe"
	}
	if c.Tool.MaxConcurrent == 0 {
		c.Tool.MaxConcurrent = 1
	}
	if c.Tool.ListTimeout == "" {
		c.Tool.ListTimeout = "2m"
	}
	if c.Tool.ActionTimeout == "" {
		c.Tool.ActionTimeout = "30m"
	}
	if c.Journal.Type == "" {
		c.Journal.Type = "memory"
	}
	if c.Journal.Capacity == 0 {
		c.Journal.Capacity = 1000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Client.Address == "" {
		c.Client.Address = "localhost:50051"
	}
	if c.Client.Timeout == "" {
		c.Client.Timeout = "30m"
	}
}

// Validate comprueba rangos y duraciones.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.AdminPort < 0 || c.Server.AdminPort > 65535 {
		return fmt.Errorf("server.admin_port out of range: %d", c.Server.AdminPort)
	}
	if c.Tool.MaxConcurrent < 1 {
		return fmt.Errorf("tool.max_concurrent must be at least 1")
	}
	for name, v := range map[string]string{
		"tool.list_timeout":   c.Tool.ListTimeout,
		"tool.action_timeout": c.Tool.ActionTimeout,
		"client.timeout":      c.Client.Timeout,
	} {
		if _, err := parseDuration(v); err != nil {
			return fmt.Errorf("%s: %v", name, err)
		}
	}
	return nil
}

// ListenAddress devuelve host:port del servidor gRPC.
func (s ServerConfig) ListenAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (t ToolConfig) ListTimeoutDuration() time.Duration {
	d, _ := parseDuration(t.ListTimeout)
	return d
}

func (t ToolConfig) ActionTimeoutDuration() time.Duration {
	d, _ := parseDuration(t.ActionTimeout)
	return d
}

func (c ClientConfig) TimeoutDuration() time.Duration {
	d, _ := parseDuration(c.Timeout)
	return d
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %s", s)
	}
	return d, nil
}

// expandEnvVars sustituye ${VAR} por su valor; las variables no definidas se
// dejan tal cual.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

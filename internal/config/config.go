package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/source"
	"typeahead/internal/ui/autocomplete"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version" json:"version"`
	LogFile  string         `toml:"log_file,omitempty" json:"log_file,omitempty"`
	LogLevel string         `toml:"log_level,omitempty" json:"log_level,omitempty"`
	Remote   RemoteSettings `toml:"remote" json:"remote"`
	Inputs   []InputConfig  `toml:"inputs" json:"inputs"`
}

// RemoteSettings configures the HTTP transport shared by remote inputs
type RemoteSettings struct {
	TimeoutMS     int     `toml:"timeout_ms" json:"timeout_ms"`
	RatePerSecond float64 `toml:"rate_per_second" json:"rate_per_second"` // 0 disables throttling
	Burst         int     `toml:"burst" json:"burst"`
	UserAgent     string  `toml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// InputConfig describes one bound input. Exactly one of Items and
// Endpoint selects the source.
type InputConfig struct {
	ID          string `toml:"id" json:"id"`
	Label       string `toml:"label,omitempty" json:"label,omitempty"`
	Placeholder string `toml:"placeholder,omitempty" json:"placeholder,omitempty"`
	MinLength   *int   `toml:"min_length,omitempty" json:"min_length,omitempty"` // nil means 1
	MaxResults  int    `toml:"max_results,omitempty" json:"max_results,omitempty"`
	Items       []any  `toml:"items,omitempty" json:"items,omitempty"`
	Endpoint    string `toml:"endpoint,omitempty" json:"endpoint,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "typeahead", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default file, falling back to
// DefaultConfig when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.loaded("", cfg)
		return cfg, nil
	}

	cfg, err := readFile(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.loaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return writeFile(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cs.loaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	return writeFile(config, path)
}

func (cs *configService) loaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Inputs: len(cfg.Inputs)})
	}
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if isJSON(path) {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func writeFile(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(config, "", "  ")
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// DefaultConfig returns the default configuration: one static city input
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		LogLevel: "info",
		Remote: RemoteSettings{
			TimeoutMS: int(source.DefaultTimeout / time.Millisecond),
			Burst:     1,
			UserAgent: source.DefaultUserAgent,
		},
		Inputs: []InputConfig{
			{
				ID:          "city",
				Label:       "City",
				Placeholder: "Start typing a city",
				Items:       []any{"Prague", "Brno", "Ostrava", "Plzeň", "Olomouc", "Liberec"},
			},
		},
	}
}

// WithEndpoint replaces the inputs with a single remote input
func (c *Config) WithEndpoint(endpoint string) *Config {
	out := *c
	out.Inputs = []InputConfig{{
		ID:          "remote",
		Label:       "Search",
		Placeholder: "Type to query " + endpoint,
		Endpoint:    endpoint,
	}}
	return &out
}

// Validate reports every problem in the configuration at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
		}
	}
	if c.Remote.TimeoutMS < 0 {
		result = multierror.Append(result, errors.New("remote.timeout_ms must not be negative"))
	}
	if c.Remote.RatePerSecond < 0 {
		result = multierror.Append(result, errors.New("remote.rate_per_second must not be negative"))
	}
	if len(c.Inputs) == 0 {
		result = multierror.Append(result, errors.New("no inputs configured"))
	}

	seen := make(map[string]bool)
	for i, in := range c.Inputs {
		name := fmt.Sprintf("inputs[%d]", i)
		if in.ID == "" {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, autocomplete.ErrMissingID))
		} else {
			name = fmt.Sprintf("inputs[%d] (%s)", i, in.ID)
			if seen[in.ID] {
				result = multierror.Append(result, fmt.Errorf("%s: duplicate id", name))
			}
			seen[in.ID] = true
		}
		if in.Endpoint != "" && len(in.Items) > 0 {
			result = multierror.Append(result, fmt.Errorf("%s: items and endpoint are exclusive", name))
		}
		if in.MinLength != nil && *in.MinLength < 0 {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, autocomplete.ErrInvalidMinLength))
		}
		if in.MaxResults < 0 {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, autocomplete.ErrInvalidMaxResults))
		}
	}

	return result.ErrorOrNil()
}

// Transport builds the HTTP transport described by the remote settings
func (c *Config) Transport() *source.HTTPTransport {
	var opts []source.HTTPOption
	if c.Remote.TimeoutMS > 0 {
		opts = append(opts, source.WithTimeout(time.Duration(c.Remote.TimeoutMS)*time.Millisecond))
	}
	if c.Remote.RatePerSecond > 0 {
		opts = append(opts, source.WithRateLimit(c.Remote.RatePerSecond, c.Remote.Burst))
	}
	if c.Remote.UserAgent != "" {
		opts = append(opts, source.WithUserAgent(c.Remote.UserAgent))
	}
	return source.NewHTTPTransport(opts...)
}

// InstanceConfigs converts the inputs into instance configs sharing transport
func (c *Config) InstanceConfigs(transport source.Transport) []autocomplete.Config {
	out := make([]autocomplete.Config, 0, len(c.Inputs))
	for _, in := range c.Inputs {
		out = append(out, in.instanceConfig(transport))
	}
	return out
}

func (in InputConfig) instanceConfig(transport source.Transport) autocomplete.Config {
	spec := domain.StaticSource(in.Items...)
	if in.Endpoint != "" {
		spec = domain.RemoteSource(in.Endpoint)
	}

	cfg := autocomplete.NewConfig(in.ID, spec)
	cfg.Label = in.Label
	cfg.Placeholder = in.Placeholder
	cfg.Transport = transport
	if in.MinLength != nil {
		cfg.MinLength = *in.MinLength
	}
	if in.MaxResults > 0 {
		cfg.MaxResults = in.MaxResults
	}
	return cfg
}

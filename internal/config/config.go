package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultNASAKey   = "DEMO_KEY"
	DefaultImagesURL = "https://images-api.nasa.gov"
	DefaultAPIURL    = "https://api.nasa.gov"
	DefaultLogLevel  = "info"
)

type Profile struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model"`
}

// NASA holds the settings for the image archive and APOD endpoints.
type NASA struct {
	APIKey    string `json:"api_key"`
	ImagesURL string `json:"images_url,omitempty"`
	APIURL    string `json:"api_url,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	NASA           NASA               `json:"nasa"`
	LogLevel       string             `json:"log_level,omitempty"`
	LogFile        string             `json:"log_file,omitempty"`
	currentProfile *Profile
	env            Env
}

// Env carries overrides read from NOVAQUEST_* variables. Only the fields
// with an envconfig tag are also looked up without the prefix, so a plain
// GEMINI_API_KEY works while a generic DEBUG or LOG_LEVEL is ignored.
type Env struct {
	Home       string `envconfig:"HOME"`
	GeminiKey  string `envconfig:"GEMINI_API_KEY"`
	AIBaseURL  string `split_words:"true"`
	AIModel    string `split_words:"true"`
	NasaAPIKey string `split_words:"true"`
	LogLevel   string `split_words:"true"`
	LogFile    string `split_words:"true"`
	Debug      bool
}

func LoadConfig() (*Config, error) {
	env, err := loadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	configPath := configPathFor(env)

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.env = env

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

func loadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("NOVAQUEST", &env); err != nil {
		return Env{}, err
	}
	if env.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Env{}, err
		}
		env.Home = home
	}
	return env, nil
}

// IsValid reports whether the generative model has a credential.
func (c *Config) IsValid() bool {
	return c.GetAPIKey() != ""
}

func (c *Config) GetAPIKey() string {
	if c.env.GeminiKey != "" {
		return c.env.GeminiKey
	}
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.env.AIModel != "" {
		return c.env.AIModel
	}
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

func (c *Config) GetBaseURL() string {
	if c.env.AIBaseURL != "" {
		return c.env.AIBaseURL
	}
	if c.currentProfile == nil || c.currentProfile.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetNASAKey() string {
	if c.env.NasaAPIKey != "" {
		return c.env.NasaAPIKey
	}
	if c.NASA.APIKey == "" {
		return DefaultNASAKey
	}
	return c.NASA.APIKey
}

func (c *Config) GetImagesURL() string {
	if c.NASA.ImagesURL == "" {
		return DefaultImagesURL
	}
	return c.NASA.ImagesURL
}

func (c *Config) GetAPIURL() string {
	if c.NASA.APIURL == "" {
		return DefaultAPIURL
	}
	return c.NASA.APIURL
}

func (c *Config) GetLogLevel() string {
	if c.env.LogLevel != "" {
		return c.env.LogLevel
	}
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// GetLogFile returns where the TUI writes its log, next to the config file
// unless overridden.
func (c *Config) GetLogFile() string {
	if c.env.LogFile != "" {
		return c.env.LogFile
	}
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.env.Home, ".novaquest", "novaquest.log")
}

// Debug reports whether HTTP traffic should be dumped to the log.
func (c *Config) Debug() bool {
	return c.env.Debug
}

// KeyFromEnv reports whether the model credential came from the environment.
func (c *Config) KeyFromEnv() bool {
	return c.env.GeminiKey != ""
}

func configPathFor(env Env) string {
	return filepath.Join(env.Home, ".novaquest", "config.json")
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				APIKey:  "",
				BaseURL: "",
				Model:   DefaultModel,
			},
		},
		ActiveProfile: "default",
		NASA: NASA{
			APIKey: DefaultNASAKey,
		},
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	return saveConfig(c, c.Path())
}

// Path returns the location of the config file.
func (c *Config) Path() string {
	return configPathFor(c.env)
}

// ActivateProfile switches the active profile, rejecting unknown names.
func (c *Config) ActivateProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

func (c *Config) setCurrentProfile() error {
	if c.Profiles == nil {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}

// Package config loads runtime settings from ~/.meshsos/config.toml and
// MESHSOS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".meshsos"
	envPrefix  = "MESHSOS"
)

type Config struct {
	Detection    DetectionConfig
	Handshake    HandshakeConfig
	Confirmation ConfirmationConfig
	MessagesPath string
	PrefsPath    string
	IdentityDir  string
	LogLevel     string
}

type DetectionConfig struct {
	Threshold   float64
	BurstWindow time.Duration
	MinSamples  int
	Cooldown    time.Duration
	Light       float64
	Moderate    float64
	Severe      float64
}

type HandshakeConfig struct {
	ConnectTimeout time.Duration
	SuccessReset   time.Duration
}

type ConfirmationConfig struct {
	Countdown time.Duration
}

// Load reads the optional config file into v, then builds a Config from v
// with defaults applied. The same v can be handed to adapters that read
// their own keys.
func Load(v *viper.Viper) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, homeDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Detection: DetectionConfig{
			Threshold:   v.GetFloat64("detection.threshold"),
			BurstWindow: v.GetDuration("detection.burst_window"),
			MinSamples:  v.GetInt("detection.min_samples"),
			Cooldown:    v.GetDuration("detection.cooldown"),
			Light:       v.GetFloat64("detection.severity.light"),
			Moderate:    v.GetFloat64("detection.severity.moderate"),
			Severe:      v.GetFloat64("detection.severity.severe"),
		},
		Handshake: HandshakeConfig{
			ConnectTimeout: v.GetDuration("handshake.connect_timeout"),
			SuccessReset:   v.GetDuration("handshake.success_reset"),
		},
		Confirmation: ConfirmationConfig{
			Countdown: v.GetDuration("confirmation.countdown"),
		},
		MessagesPath: v.GetString("messages.path"),
		PrefsPath:    v.GetString("prefs.path"),
		IdentityDir:  v.GetString("identity.dir"),
		LogLevel:     v.GetString("log.level"),
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads environment variables from path. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// setDefaults registers tunables as viper defaults so an explicit zero in
// the file or environment is kept rather than replaced.
func setDefaults(v *viper.Viper, homeDir string) {
	fall := domain.DefaultFallDetectionConfig()
	v.SetDefault("detection.threshold", fall.Threshold)
	v.SetDefault("detection.burst_window", fall.BurstWindow)
	v.SetDefault("detection.min_samples", fall.MinSamplesInBurst)
	v.SetDefault("detection.cooldown", fall.Cooldown)
	v.SetDefault("detection.severity.light", fall.Severity.Light)
	v.SetDefault("detection.severity.moderate", fall.Severity.Moderate)
	v.SetDefault("detection.severity.severe", fall.Severity.Severe)

	timings := domain.DefaultHandshakeTimings()
	v.SetDefault("handshake.connect_timeout", timings.ConnectTimeout)
	v.SetDefault("handshake.success_reset", timings.SuccessReset)

	v.SetDefault("confirmation.countdown", 5*time.Second)

	v.SetDefault("messages.path", filepath.Join(homeDir, configDir, "messages.toml"))
	v.SetDefault("prefs.path", filepath.Join(homeDir, configDir, "prefs.toml"))
	v.SetDefault("identity.dir", filepath.Join(homeDir, configDir, "identity"))
}

func (c *Config) validate() error {
	if err := c.FallDetection().Validate(); err != nil {
		return fmt.Errorf("detection config: %w", err)
	}
	if err := c.HandshakeTimings().Validate(); err != nil {
		return fmt.Errorf("handshake config: %w", err)
	}
	if c.Confirmation.Countdown < 0 {
		return fmt.Errorf("confirmation.countdown must not be negative")
	}
	if c.MessagesPath == "" {
		return fmt.Errorf("messages.path is required")
	}
	if c.PrefsPath == "" {
		return fmt.Errorf("prefs.path is required")
	}
	if c.IdentityDir == "" {
		return fmt.Errorf("identity.dir is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) FallDetection() domain.FallDetectionConfig {
	return domain.FallDetectionConfig{
		Threshold:         c.Detection.Threshold,
		BurstWindow:       c.Detection.BurstWindow,
		MinSamplesInBurst: c.Detection.MinSamples,
		Cooldown:          c.Detection.Cooldown,
		Severity: domain.SeverityThresholds{
			Light:    c.Detection.Light,
			Moderate: c.Detection.Moderate,
			Severe:   c.Detection.Severe,
		},
	}
}

func (c *Config) HandshakeTimings() domain.HandshakeTimings {
	return domain.HandshakeTimings{
		ConnectTimeout: c.Handshake.ConnectTimeout,
		SuccessReset:   c.Handshake.SuccessReset,
	}
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/surge-downloader/winres/internal/window"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "WINRES"

// EnvOverrides lists the settings that can be overridden from the
// environment. Unset variables leave the loaded settings alone.
type EnvOverrides struct {
	// Env: WINRES_OUTPUT
	Output string `envconfig:"OUTPUT"`
	// Env: WINRES_LOG_RETENTION_COUNT
	LogRetentionCount *int `envconfig:"LOG_RETENTION_COUNT"`

	// Preset selects a whole variant ("a" or "b") before the individual
	// policy fields are applied.
	// Env: WINRES_POLICY
	Preset string `envconfig:"POLICY"`
	// Env: WINRES_POLICY_REPAIR
	LimitRepair string `envconfig:"POLICY_REPAIR"`
	// Env: WINRES_POLICY_CENTER
	CenterPolicy string `envconfig:"POLICY_CENTER"`
	// Env: WINRES_POLICY_PARITY
	Parity string `envconfig:"POLICY_PARITY"`

	Extent *int `envconfig:"DEFAULTS_EXTENT"`
	Lower  *int `envconfig:"DEFAULTS_LOWER"`
	Upper  *int `envconfig:"DEFAULTS_UPPER"`
	Center *int `envconfig:"DEFAULTS_CENTER"`
	Length *int `envconfig:"DEFAULTS_LENGTH"`
}

// LoadEnvOverrides reads WINRES_* variables.
func LoadEnvOverrides() (EnvOverrides, error) {
	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvOverrides{}, fmt.Errorf("process environment: %w", err)
	}
	return env, nil
}

// Apply copies every set override onto s.
func (e EnvOverrides) Apply(s *Settings) error {
	if e.Output != "" {
		s.General.Output = e.Output
	}
	if e.LogRetentionCount != nil {
		s.General.LogRetentionCount = *e.LogRetentionCount
	}
	if e.Preset != "" {
		pol, err := window.ParsePreset(e.Preset)
		if err != nil {
			return err
		}
		s.SetPolicy(pol)
	}
	if e.LimitRepair != "" {
		s.Policy.LimitRepair = e.LimitRepair
	}
	if e.CenterPolicy != "" {
		s.Policy.Center = e.CenterPolicy
	}
	if e.Parity != "" {
		s.Policy.Parity = e.Parity
	}
	for _, o := range []struct {
		src *int
		dst *int
	}{
		{e.Extent, &s.Defaults.Extent},
		{e.Lower, &s.Defaults.Lower},
		{e.Upper, &s.Defaults.Upper},
		{e.Center, &s.Defaults.Center},
		{e.Length, &s.Defaults.Length},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	return nil
}

// DefaultDotEnv is read when no --env-file is given.
const DefaultDotEnv = ".env"

// LoadDotEnv exports the assignments of a dotenv file into the
// process environment. Variables already set win over the file. An absent
// file is skipped so a plain checkout works without one.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultDotEnv
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("dotenv %s: %w", path, err)
	}
	return nil
}

// Load builds the effective settings: the optional .env file is loaded first,
// then settings.json (or defaults), then WINRES_* overrides. The result is
// validated.
func Load(envPath string) (*Settings, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	env, err := LoadEnvOverrides()
	if err != nil {
		return nil, err
	}
	if err := env.Apply(settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

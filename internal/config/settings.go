package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/surge-downloader/winres/internal/window"
)

// Settings holds all user-configurable application settings organized by category.
type Settings struct {
	General  GeneralSettings  `json:"general"`
	Policy   PolicySettings   `json:"policy"`
	Defaults DefaultsSettings `json:"defaults"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	Theme             int    `json:"theme" validate:"min=0,max=2"`
	Output            string `json:"output" validate:"oneof=text json"`
	LogRetentionCount int    `json:"log_retention_count" validate:"min=0"`
}

const (
	ThemeAdaptive = 0
	ThemeLight    = 1
	ThemeDark     = 2
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// PolicySettings selects the resolver variant.
type PolicySettings struct {
	LimitRepair string `json:"limit_repair" validate:"oneof=swap collapse"`
	Center      string `json:"center" validate:"oneof=margin clamp"`
	Parity      string `json:"parity" validate:"oneof=any even"`
}

// DefaultsSettings are the window parameters used when a flag is not given.
type DefaultsSettings struct {
	Extent int `json:"extent" validate:"min=0"`
	Lower  int `json:"lower"`
	Upper  int `json:"upper"`
	Center int `json:"center"`
	Length int `json:"length" validate:"min=0"`
}

// SettingMeta provides metadata for a single setting.
type SettingMeta struct {
	Key         string // Dotted key, e.g. "policy.parity"
	Label       string // Human-readable label
	Description string
	Type        string // "string", "int"
}

// GetSettingsMetadata returns metadata for all settings organized by category.
func GetSettingsMetadata() map[string][]SettingMeta {
	return map[string][]SettingMeta{
		"General": {
			{Key: "general.theme", Label: "Theme", Description: "Report colors (0 adaptive, 1 light, 2 dark).", Type: "int"},
			{Key: "general.output", Label: "Output", Description: "Default output format (text or json).", Type: "string"},
			{Key: "general.log_retention_count", Label: "Log Retention Count", Description: "Number of recent debug logs to keep.", Type: "int"},
		},
		"Policy": {
			{Key: "policy.limit_repair", Label: "Limit Repair", Description: "How inverted limits are repaired (swap or collapse).", Type: "string"},
			{Key: "policy.center", Label: "Center Policy", Description: "How the center is constrained (margin or clamp).", Type: "string"},
			{Key: "policy.parity", Label: "Length Parity", Description: "Allowed effective lengths (any or even).", Type: "string"},
		},
		"Defaults": {
			{Key: "defaults.extent", Label: "Total Extent", Description: "Upper bound of the addressable range.", Type: "int"},
			{Key: "defaults.lower", Label: "Lower Limit", Description: "Default lower limit.", Type: "int"},
			{Key: "defaults.upper", Label: "Upper Limit", Description: "Default upper limit.", Type: "int"},
			{Key: "defaults.center", Label: "Viewport Center", Description: "Default requested center.", Type: "int"},
			{Key: "defaults.length", Label: "Window Length", Description: "Default requested window length.", Type: "int"},
		},
	}
}

// CategoryOrder returns the order of categories for display.
func CategoryOrder() []string {
	return []string{"General", "Policy", "Defaults"}
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	pol := window.DefaultPolicy()
	return &Settings{
		General: GeneralSettings{
			Theme:             ThemeAdaptive,
			Output:            OutputText,
			LogRetentionCount: 5,
		},
		Policy: PolicySettings{
			LimitRepair: pol.LimitRepair.String(),
			Center:      pol.CenterPolicy.String(),
			Parity:      pol.Parity.String(),
		},
		Defaults: DefaultsSettings{
			Extent: 321,
			Lower:  99,
			Upper:  148,
			Center: 123,
			Length: 40,
		},
	}
}

// ToPolicy converts the policy section into a resolver policy.
func (s *Settings) ToPolicy() (window.Policy, error) {
	var pol window.Policy
	var err error
	if pol.LimitRepair, err = window.ParseLimitRepair(s.Policy.LimitRepair); err != nil {
		return pol, err
	}
	if pol.CenterPolicy, err = window.ParseCenterPolicy(s.Policy.Center); err != nil {
		return pol, err
	}
	if pol.Parity, err = window.ParseParity(s.Policy.Parity); err != nil {
		return pol, err
	}
	return pol, nil
}

// SetPolicy stores pol in the policy section.
func (s *Settings) SetPolicy(pol window.Policy) {
	s.Policy = PolicySettings{
		LimitRepair: pol.LimitRepair.String(),
		Center:      pol.CenterPolicy.String(),
		Parity:      pol.Parity.String(),
	}
}

// ToParams converts the defaults section into window parameters.
func (s *Settings) ToParams() window.Params {
	return window.Params{
		TotalExtent:     s.Defaults.Extent,
		LowerLimit:      s.Defaults.Lower,
		UpperLimit:      s.Defaults.Upper,
		ViewportCenter:  s.Defaults.Center,
		RequestedLength: s.Defaults.Length,
	}
}

// Get returns the string form of a dotted setting key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "general.theme":
		return strconv.Itoa(s.General.Theme), nil
	case "general.output":
		return s.General.Output, nil
	case "general.log_retention_count":
		return strconv.Itoa(s.General.LogRetentionCount), nil
	case "policy.limit_repair":
		return s.Policy.LimitRepair, nil
	case "policy.center":
		return s.Policy.Center, nil
	case "policy.parity":
		return s.Policy.Parity, nil
	}
	if p := s.intField(key); p != nil {
		return strconv.Itoa(*p), nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

// Set parses value into the setting named by a dotted key. The result is not
// validated; call Validate before saving.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "general.output":
		s.General.Output = value
		return nil
	case "policy.limit_repair":
		s.Policy.LimitRepair = value
		return nil
	case "policy.center":
		s.Policy.Center = value
		return nil
	case "policy.parity":
		s.Policy.Parity = value
		return nil
	case "policy":
		pol, err := window.ParsePreset(value)
		if err != nil {
			return err
		}
		s.SetPolicy(pol)
		return nil
	}

	p := s.intField(key)
	if p == nil {
		return fmt.Errorf("unknown setting %q", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	*p = n
	return nil
}

func (s *Settings) intField(key string) *int {
	switch key {
	case "general.theme":
		return &s.General.Theme
	case "general.log_retention_count":
		return &s.General.LogRetentionCount
	case "defaults.extent":
		return &s.Defaults.Extent
	case "defaults.lower":
		return &s.Defaults.Lower
	case "defaults.upper":
		return &s.Defaults.Upper
	case "defaults.center":
		return &s.Defaults.Center
	case "defaults.length":
		return &s.Defaults.Length
	}
	return nil
}

// GetSettingsPath returns the path to the settings JSON file.
func GetSettingsPath() string {
	return filepath.Join(GetAppDir(), "settings.json")
}

// LoadSettings loads settings from disk. Returns defaults if file doesn't exist.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings validates and saves settings to disk atomically. Concurrent
// writers are serialized with a lock file next to the settings.
func SaveSettings(s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	path := GetSettingsPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock settings: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

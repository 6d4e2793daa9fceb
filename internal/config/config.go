// ABOUTME: Viewer settings loaded from global and project YAML files and merged
// ABOUTME: Project values override global ones; Options maps settings onto engine options

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode names accepted by Settings.Mode.
const (
	ModeInteractive = "interactive"
	ModeRaw         = "raw"
	ModePrint       = "print"
)

// Settings holds the merged configuration.
type Settings struct {
	ItemHeight     int            `yaml:"item_height,omitempty"`
	Overscan       int            `yaml:"overscan,omitempty"`
	FixedSize      bool           `yaml:"fixed_size,omitempty"`
	Scrollbar      *bool          `yaml:"scrollbar,omitempty"`
	Theme          string         `yaml:"theme,omitempty"`
	Mode           string         `yaml:"mode,omitempty"`
	FollowInterval time.Duration  `yaml:"follow_interval,omitempty"`
	ReclaimDelay   *time.Duration `yaml:"reclaim_delay,omitempty"`
	DoubleClick    time.Duration  `yaml:"double_click,omitempty"`
	TreeDepth      int            `yaml:"tree_depth,omitempty"`
	WheelStep      int            `yaml:"wheel_step,omitempty"`
	Placeholder    string         `yaml:"placeholder,omitempty"`
}

// Defaults returns the settings used when no file sets a value.
func Defaults() *Settings {
	return &Settings{
		ItemHeight:     1,
		Mode:           ModeInteractive,
		FollowInterval: 500 * time.Millisecond,
		DoubleClick:    400 * time.Millisecond,
		TreeDepth:      3,
		WheelStep:      3,
		Placeholder:    "(empty)",
	}
}

// ScrollbarEnabled reports whether the scrollbar decoration is shown.
func (s *Settings) ScrollbarEnabled() bool {
	return s.Scrollbar == nil || *s.Scrollbar
}

// Validate rejects values no front-end can run with.
func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeInteractive, ModeRaw, ModePrint:
	default:
		return fmt.Errorf("mode %q: %w", s.Mode, ErrInvalidSetting)
	}
	if s.ItemHeight < 0 {
		return fmt.Errorf("item_height %d: %w", s.ItemHeight, ErrInvalidSetting)
	}
	if s.Overscan < 0 {
		return fmt.Errorf("overscan %d: %w", s.Overscan, ErrInvalidSetting)
	}
	return nil
}

// ErrInvalidSetting marks a setting outside its accepted range.
var ErrInvalidSetting = errors.New("invalid setting")

// Load reads and merges defaults, global and project settings, then
// expands ${VAR} references.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFirst(GlobalConfigFiles())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	project, err := loadFirst(ProjectConfigFiles(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadFile reads one settings file on top of the defaults.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	merged := merge(Defaults(), s)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFirst loads the first existing file of paths. Missing files are
// not an error.
func loadFirst(paths []string) (*Settings, error) {
	for _, p := range paths {
		s, err := loadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return s, err
	}
	return nil, nil
}

func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero override values onto base.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		return base
	}

	result := *base

	if override.ItemHeight != 0 {
		result.ItemHeight = override.ItemHeight
	}
	if override.Overscan != 0 {
		result.Overscan = override.Overscan
	}
	if override.FixedSize {
		result.FixedSize = true
	}
	if override.Scrollbar != nil {
		result.Scrollbar = override.Scrollbar
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.FollowInterval != 0 {
		result.FollowInterval = override.FollowInterval
	}
	if override.ReclaimDelay != nil {
		result.ReclaimDelay = override.ReclaimDelay
	}
	if override.DoubleClick != 0 {
		result.DoubleClick = override.DoubleClick
	}
	if override.TreeDepth != 0 {
		result.TreeDepth = override.TreeDepth
	}
	if override.WheelStep != 0 {
		result.WheelStep = override.WheelStep
	}
	if override.Placeholder != "" {
		result.Placeholder = override.Placeholder
	}

	return &result
}

// Package config loads the optional YAML configuration of md2docx.
//
// A config file overrides the built-in styles per element kind and sets
// defaults for host selection, rendering and input decoding. Command-line
// flags take precedence over every value read here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/charset"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/host"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under os.UserConfigDir searched for named configs.
const AppDir = "go-md2docx"

// Field length limits.
const (
	MaxFamilyLength = 64   // Font family name
	MaxNameLength   = 50   // Style display name
	MaxPathLength   = 4096 // File system path
)

// Config holds all configuration for a conversion run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Host   HostConfig   `yaml:"host"`
	Render RenderConfig `yaml:"render"`
	Styles StylesConfig `yaml:"styles"`
}

// InputConfig defines how source files are read.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // "utf-8" (default), "gb18030", "gbk", "auto"
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Directory for .docx files (empty = next to source)
	Open       bool   `yaml:"open"`       // Open the document after conversion
}

// HostConfig defines host application selection.
type HostConfig struct {
	Prefer  string `yaml:"prefer"`  // "auto" (default), "word", "wps", "libreoffice"
	Timeout string `yaml:"timeout"` // Go duration, e.g. "90s" (empty = 2m)
}

// RenderConfig defines HTML generation options.
type RenderConfig struct {
	MergeLists    bool   `yaml:"mergeLists"`    // One container per run of list items
	KeepNumbering bool   `yaml:"keepNumbering"` // Keep source numbers on ordered items
	CSS           string `yaml:"css"`           // Path to extra CSS appended after generated rules
}

// StylesConfig holds per-kind overrides. Omitted kinds keep their defaults.
type StylesConfig struct {
	H1 *StyleConfig `yaml:"h1"`
	H2 *StyleConfig `yaml:"h2"`
	H3 *StyleConfig `yaml:"h3"`
	P  *StyleConfig `yaml:"p"`
	Li *StyleConfig `yaml:"li"`
}

// StyleConfig overrides part of one ElementStyle. Nil pointers and empty
// strings keep the base value, so "spaceAfter: 0" is distinct from omitting it.
type StyleConfig struct {
	Name            string   `yaml:"name"`
	Family          string   `yaml:"family"`
	Size            *float64 `yaml:"size"`
	LineSpacing     *float64 `yaml:"lineSpacing"`
	SpaceBefore     *float64 `yaml:"spaceBefore"`
	SpaceAfter      *float64 `yaml:"spaceAfter"`
	Align           string   `yaml:"align"`
	FirstLineIndent *float64 `yaml:"firstLineIndent"`
}

// byKind lists the overrides with their kinds, in rendering order.
func (s StylesConfig) byKind() []struct {
	kind md2docx.Kind
	cfg  *StyleConfig
} {
	return []struct {
		kind md2docx.Kind
		cfg  *StyleConfig
	}{
		{md2docx.KindH1, s.H1},
		{md2docx.KindH2, s.H2},
		{md2docx.KindH3, s.H3},
		{md2docx.KindParagraph, s.P},
		{md2docx.KindListItem, s.Li},
	}
}

// apply overlays the override on base.
func (sc *StyleConfig) apply(base md2docx.ElementStyle) md2docx.ElementStyle {
	if sc == nil {
		return base
	}
	if sc.Name != "" {
		base.Name = sc.Name
	}
	if sc.Family != "" {
		base.Font.Family = sc.Family
	}
	if sc.Size != nil {
		base.Font.Size = *sc.Size
	}
	if sc.LineSpacing != nil {
		base.Paragraph.LineSpacing = *sc.LineSpacing
	}
	if sc.SpaceBefore != nil {
		base.Paragraph.SpaceBefore = *sc.SpaceBefore
	}
	if sc.SpaceAfter != nil {
		base.Paragraph.SpaceAfter = *sc.SpaceAfter
	}
	if sc.Align != "" {
		base.Paragraph.Align = md2docx.Align(strings.ToLower(sc.Align))
	}
	if sc.FirstLineIndent != nil {
		base.Paragraph.FirstLineIndent = *sc.FirstLineIndent
	}
	return base
}

// ApplyStyles returns base with the configured overrides applied. The
// result is validated; base is not modified.
func (c *Config) ApplyStyles(base md2docx.StyleSet) (md2docx.StyleSet, error) {
	out := base.Clone()
	for _, entry := range c.Styles.byKind() {
		if entry.cfg == nil {
			continue
		}
		out[entry.kind] = entry.cfg.apply(out[entry.kind])
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	return out, nil
}

// HasStyles reports whether any style override is present.
func (c *Config) HasStyles() bool {
	for _, entry := range c.Styles.byKind() {
		if entry.cfg != nil {
			return true
		}
	}
	return false
}

// Timeout returns the parsed host timeout, or 0 when unset.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Host.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks every field. Called automatically by LoadConfig, but
// available for callers who construct Config manually.
func (c *Config) Validate() error {
	if _, err := charset.Normalize(c.Input.Encoding); err != nil {
		return fmt.Errorf("%w: input.encoding: %v", ErrInvalidValue, err)
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := host.ValidateName(c.Host.Prefer); err != nil {
		return fmt.Errorf("%w: host.prefer: %v", ErrInvalidValue, err)
	}
	if c.Host.Timeout != "" {
		d, err := time.ParseDuration(c.Host.Timeout)
		if err != nil {
			return fmt.Errorf("%w: host.timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: host.timeout: must be positive, got %s", ErrInvalidValue, d)
		}
	}
	if err := validateFieldLength("render.css", c.Render.CSS, MaxPathLength); err != nil {
		return err
	}

	for _, entry := range c.Styles.byKind() {
		if entry.cfg == nil {
			continue
		}
		prefix := "styles." + entry.kind.String()
		if err := validateFieldLength(prefix+".family", entry.cfg.Family, MaxFamilyLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".name", entry.cfg.Name, MaxNameLength); err != nil {
			return err
		}
		if entry.cfg.Align != "" {
			if _, ok := md2docx.ParseAlign(strings.ToLower(entry.cfg.Align)); !ok {
				return fmt.Errorf("%w: %s.align: %q (must be left, center, right, or justify)", ErrInvalidValue, prefix, entry.cfg.Align)
			}
		}
	}

	// Bounds are checked on the merged result so errors match the flag path.
	if _, err := c.ApplyStyles(md2docx.DefaultStyles()); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that changes nothing.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Encoding: charset.UTF8},
		Output: OutputConfig{DefaultDir: ""},
		Host:   HostConfig{Prefer: host.NameAuto},
		Render: RenderConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2docx/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Package config loads strands settings from defaults, an optional YAML
// file, STRANDS_ environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/strands/frame"
	"github.com/iw2rmb/strands/internal/logging"
	"github.com/iw2rmb/strands/trigram"
)

const (
	EnvPrefix = "STRANDS"
	fileName  = "strands"
)

type Config struct {
	// Value is the initial slider position in [0, 1].
	Value     float64        `mapstructure:"value" yaml:"value"`
	Encoding  string         `mapstructure:"encoding" yaml:"encoding"`
	WordFiles []string       `mapstructure:"word_files" yaml:"word_files"`
	Export    ExportConfig   `mapstructure:"export" yaml:"export"`
	Geometry  GeometryConfig `mapstructure:"geometry" yaml:"geometry"`
	Slider    SliderConfig   `mapstructure:"slider" yaml:"slider"`
	Log       LogConfig      `mapstructure:"log" yaml:"log"`
}

type ExportConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type GeometryConfig struct {
	LetterGap  float64 `mapstructure:"letter_gap" yaml:"letter_gap"`
	ArrowGap   float64 `mapstructure:"arrow_gap" yaml:"arrow_gap"`
	FontSize   float64 `mapstructure:"font_size" yaml:"font_size"`
	HeadLength float64 `mapstructure:"head_length" yaml:"head_length"`
}

type SliderConfig struct {
	FineStep   float64 `mapstructure:"fine_step" yaml:"fine_step"`
	CoarseStep float64 `mapstructure:"coarse_step" yaml:"coarse_step"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

func Defaults() Config {
	g := frame.DefaultGeometry()
	return Config{
		Value:    1,
		Encoding: "utf-8",
		Export:   ExportConfig{Path: "strands.png"},
		Geometry: GeometryConfig{
			LetterGap:  g.LetterGap,
			ArrowGap:   g.ArrowGap,
			FontSize:   g.FontSize,
			HeadLength: g.HeadLength,
		},
		Slider: SliderConfig{FineStep: 1.0 / 1024, CoarseStep: 1.0 / 32},
		Log:    LogConfig{Level: "info"},
	}
}

// SetDefaults registers every key of Defaults on v, so that environment
// variables are seen by Unmarshal even when no file sets the key.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("value", d.Value)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("word_files", d.WordFiles)
	v.SetDefault("export.path", d.Export.Path)
	v.SetDefault("geometry.letter_gap", d.Geometry.LetterGap)
	v.SetDefault("geometry.arrow_gap", d.Geometry.ArrowGap)
	v.SetDefault("geometry.font_size", d.Geometry.FontSize)
	v.SetDefault("geometry.head_length", d.Geometry.HeadLength)
	v.SetDefault("slider.fine_step", d.Slider.FineStep)
	v.SetDefault("slider.coarse_step", d.Slider.CoarseStep)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// NewViper returns a viper instance with defaults and environment binding
// set up. STRANDS_EXPORT_PATH maps to export.path.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v, or when path is empty looks for strands.yaml in
// the working directory and then in the user config directory. A missing
// file is not an error when path is empty.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "strands"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Value < 0 || c.Value > 1 {
		errs = append(errs, fmt.Errorf("value %v outside [0, 1]", c.Value))
	}
	if _, err := trigram.LookupEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	for _, f := range []struct {
		key      string
		v        float64
		positive bool
	}{
		{"geometry.letter_gap", c.Geometry.LetterGap, true},
		{"geometry.font_size", c.Geometry.FontSize, true},
		{"geometry.arrow_gap", c.Geometry.ArrowGap, false},
		{"geometry.head_length", c.Geometry.HeadLength, false},
		{"slider.fine_step", c.Slider.FineStep, true},
		{"slider.coarse_step", c.Slider.CoarseStep, true},
	} {
		switch {
		case f.positive && f.v <= 0:
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", f.key, f.v))
		case f.v < 0:
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", f.key, f.v))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) FrameGeometry() frame.Geometry {
	return frame.Geometry{
		LetterGap:  c.Geometry.LetterGap,
		ArrowGap:   c.Geometry.ArrowGap,
		FontSize:   c.Geometry.FontSize,
		HeadLength: c.Geometry.HeadLength,
	}
}

// YAML renders c as a config file.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

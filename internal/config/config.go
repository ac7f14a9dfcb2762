// Package config loads tool settings from the environment.
//
// Values come from process environment variables, optionally seeded from a
// .env file in the working directory. Every key has a default, so the
// tools run unconfigured.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ironsheep/figure-tools/internal/imaging"
)

// Config holds all tool settings.
type Config struct {
	LogLevel string
	Grid     GridConfig
	Output   OutputConfig
}

// GridConfig holds the composite layout and caption style.
type GridConfig struct {
	CellWidth     int
	CellHeight    int
	Padding       int
	CaptionHeight int
	CaptionInset  int
	FontPath      string
	FontSize      float64
	CaptionColor  string
	Background    string
}

// OutputConfig controls encoding of written images.
type OutputConfig struct {
	JPEGQuality int
}

// Load reads .env (if present) and the environment. envFiles overrides
// the default ".env".
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	layout := imaging.DefaultLayout()

	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GRID_CELL_WIDTH", layout.CellWidth)
	v.SetDefault("GRID_CELL_HEIGHT", layout.CellHeight)
	v.SetDefault("GRID_PADDING", layout.Padding)
	v.SetDefault("GRID_CAPTION_HEIGHT", layout.CaptionHeight)
	v.SetDefault("GRID_CAPTION_INSET", layout.CaptionInset)
	v.SetDefault("GRID_FONT_PATH", imaging.DefaultFontPath)
	v.SetDefault("GRID_FONT_SIZE", imaging.DefaultFontSize)
	v.SetDefault("GRID_CAPTION_COLOR", "#000000")
	v.SetDefault("GRID_BACKGROUND", "#FFFFFF")
	v.SetDefault("IMAGE_JPEG_QUALITY", imaging.DefaultJPEGQuality)

	v.AutomaticEnv()

	cfg := &Config{
		LogLevel: v.GetString("LOG_LEVEL"),
		Grid: GridConfig{
			CellWidth:     v.GetInt("GRID_CELL_WIDTH"),
			CellHeight:    v.GetInt("GRID_CELL_HEIGHT"),
			Padding:       v.GetInt("GRID_PADDING"),
			CaptionHeight: v.GetInt("GRID_CAPTION_HEIGHT"),
			CaptionInset:  v.GetInt("GRID_CAPTION_INSET"),
			FontPath:      v.GetString("GRID_FONT_PATH"),
			FontSize:      v.GetFloat64("GRID_FONT_SIZE"),
			CaptionColor:  v.GetString("GRID_CAPTION_COLOR"),
			Background:    v.GetString("GRID_BACKGROUND"),
		},
		Output: OutputConfig{
			JPEGQuality: v.GetInt("IMAGE_JPEG_QUALITY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings every tool uses. The GRID_* keys only
// matter when composing and are checked by ComposeOptions.
func (c *Config) Validate() error {
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("IMAGE_JPEG_QUALITY must be between 1 and 100, got %d", c.Output.JPEGQuality)
	}
	return nil
}

// Layout returns the configured grid geometry.
func (c *Config) Layout() imaging.Layout {
	return imaging.Layout{
		CellWidth:     c.Grid.CellWidth,
		CellHeight:    c.Grid.CellHeight,
		Padding:       c.Grid.Padding,
		CaptionHeight: c.Grid.CaptionHeight,
		CaptionInset:  c.Grid.CaptionInset,
	}
}

// SaveOptions returns the configured encoder settings.
func (c *Config) SaveOptions() imaging.SaveOptions {
	return imaging.SaveOptions{JPEGQuality: c.Output.JPEGQuality}
}

// ComposeOptions builds the options for imaging.ComposeFiles and rejects
// an invalid grid layout or colour. The configured font is loaded here; when it is unavailable the built-in face
// is used and the reason is logged at debug level.
func (c *Config) ComposeOptions(log *zap.Logger) (imaging.ComposeOptions, error) {
	if err := c.Layout().Validate(); err != nil {
		return imaging.ComposeOptions{}, fmt.Errorf("invalid grid layout: %w", err)
	}
	captionColor, err := imaging.ParseColor(c.Grid.CaptionColor)
	if err != nil {
		return imaging.ComposeOptions{}, fmt.Errorf("GRID_CAPTION_COLOR: %w", err)
	}
	background, err := imaging.ParseColor(c.Grid.Background)
	if err != nil {
		return imaging.ComposeOptions{}, fmt.Errorf("GRID_BACKGROUND: %w", err)
	}

	face, err := imaging.ResolveFace(c.Grid.FontPath, c.Grid.FontSize)
	if err != nil {
		log.Debug("Using built-in caption font",
			zap.String("font_path", c.Grid.FontPath),
			zap.Error(err))
	}

	return imaging.ComposeOptions{
		Layout:       c.Layout(),
		Face:         face,
		CaptionColor: captionColor,
		Background:   background,
		Save:         c.SaveOptions(),
	}, nil
}

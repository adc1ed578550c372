package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/ByLCY/exhibit/layout"
)

const (
	// DirName 是用户配置目录，位于 home 之下。
	DirName = ".exhibit"
	// FileName 是配置文件名。
	FileName = "config.toml"
)

// Config 是 exhibit 的全部可配置项。零值字段在 Load 之后由默认值补齐。
type Config struct {
	Font     Font           `toml:"font"`
	Metrics  layout.Metrics `toml:"metrics"`
	Limits   layout.Limits  `toml:"limits"`
	LogLevel string         `toml:"log_level"`
}

// Font 指定字体文件。Path 为空时按平台查找，"builtin:mono" 使用内置 Go Mono。
type Font struct {
	Path string `toml:"path"`
	Size int    `toml:"size"` // 像素，覆盖 metrics.font_size
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Metrics:  layout.DefaultMetrics(),
		Limits:   layout.DefaultLimits(),
		LogLevel: "info",
	}
}

// DefaultPath 返回 ~/.exhibit/config.toml。
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("无法获取 home 目录: %w", err)
	}
	return filepath.Join(home, DirName, FileName), nil
}

// Load 读取 path 处的 TOML 配置；path 为空时使用 DefaultPath。
// 文件不存在时返回默认配置。未知字段视为错误。
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("无法展开配置路径 %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取配置 %s 失败: %w", expanded, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("解析配置 %s 失败: %w", expanded, err)
	}
	return cfg, nil
}

// Parse 解析 TOML 内容，并用默认值补齐未设置的字段。
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if cfg.Font.Size > 0 {
		cfg.Metrics.FontSize = cfg.Font.Size
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查网格与上限是否可用。
func (c *Config) Validate() error {
	m := c.Metrics
	if m.CharWidth <= 0 || m.LineHeight <= 0 || m.FontSize <= 0 {
		return fmt.Errorf("metrics: char_width、line_height 与 font_size 必须为正数")
	}
	if m.Padding < 0 || m.SeparatorInset < 0 || m.Gutter < 0 || m.Border < 0 {
		return fmt.Errorf("metrics: 间距与边框不能为负数")
	}
	l := c.Limits
	for name, v := range map[string]int{
		"exhibit_max_chars": l.ExhibitMaxChars,
		"exhibit_max_lines": l.ExhibitMaxLines,
		"dnd_max_width":     l.DnDMaxWidth,
		"dnd_max_height":    l.DnDMaxHeight,
		"option_max_chars":  l.OptionMaxChars,
		"option_max_lines":  l.OptionMaxLines,
		"max_options":       l.MaxOptions,
	} {
		if v <= 0 {
			return fmt.Errorf("limits: %s 必须为正数", name)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level 把 log_level 转换为 slog.Level。
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q 无效: %w", c.LogLevel, err)
	}
	return level, nil
}

// FontPath 返回展开 ~ 之后的字体路径。
func (c *Config) FontPath() (string, error) {
	if c.Font.Path == "" || strings.HasPrefix(c.Font.Path, "builtin:") {
		return c.Font.Path, nil
	}
	return homedir.Expand(c.Font.Path)
}

// Marshal 以 TOML 输出配置，供 `exhibit config` 打印当前生效值。
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

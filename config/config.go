package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"xiangqi-arena/annotation"
	"xiangqi-arena/board"
)

var (
	cfgFile = "xiangqi-arena/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are 256-color palette indexes.
type ConfigColors struct {
	BoardColor      int `json:"board"`
	LineColor       int `json:"line"`
	PalaceColor     int `json:"palace"`
	LabelColor      int `json:"label"`
	RedPieceFG      int `json:"red_fg"`
	RedPieceBG      int `json:"red_bg"`
	BlackPieceFG    int `json:"black_fg"`
	BlackPieceBG    int `json:"black_bg"`
	HighlightColor  int `json:"highlight"`
	AnnotationFG    int `json:"annotation_fg"`
	AnnotationBG    int `json:"annotation_bg"`
	AnnotationFrame int `json:"annotation_frame"`
}

type Theme struct {
	DrawPalaceDiagonals bool         `json:"draw_palace_diagonals"`
	Colors              ConfigColors `json:"colors"`
}

// AuthConfig tunes the stubbed submit.
type AuthConfig struct {
	SubmitDelayMillis int  `json:"submit_delay_ms"`
	SimulateFailure   bool `json:"simulate_failure"`
}

type Config struct {
	Theme      Theme              `json:"theme"`
	Board      board.Config       `json:"board"`
	Annotation annotation.Metrics `json:"annotation"`
	Auth       AuthConfig         `json:"auth"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	// The grid shape is fixed; only insets come from the file.
	config.Board.Files, config.Board.Ranks = board.Files, board.Ranks
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	a := c.Annotation
	if a.MaxWidth < 1 || a.Margin < 0 || a.Gap < 0 {
		return &InvalidConfig{"annotation max_width must be positive, margin and gap non-negative"}
	}
	if c.Auth.SubmitDelayMillis < 0 {
		return &InvalidConfig{"auth submit_delay_ms must not be negative"}
	}
	for _, v := range []int{
		c.Theme.Colors.BoardColor, c.Theme.Colors.LineColor, c.Theme.Colors.PalaceColor,
		c.Theme.Colors.LabelColor, c.Theme.Colors.RedPieceFG, c.Theme.Colors.RedPieceBG,
		c.Theme.Colors.BlackPieceFG, c.Theme.Colors.BlackPieceBG, c.Theme.Colors.HighlightColor,
		c.Theme.Colors.AnnotationFG, c.Theme.Colors.AnnotationBG, c.Theme.Colors.AnnotationFrame,
	} {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", v)}
		}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err = os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", filePath, err)
	}
	if err = json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parse config %s: %w", filePath, err)
	}
	return nil
}

package config

import (
	"xiangqi-arena/annotation"
	"xiangqi-arena/board"
)

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawPalaceDiagonals: true,
		Colors: ConfigColors{
			BoardColor:      180,
			LineColor:       94,
			PalaceColor:     137,
			LabelColor:      130,
			RedPieceFG:      160,
			RedPieceBG:      230,
			BlackPieceFG:    255,
			BlackPieceBG:    54,
			HighlightColor:  99,
			AnnotationFG:    255,
			AnnotationBG:    235,
			AnnotationFrame: 245,
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Board: board.DefaultConfig,
		// Cell-sized counterpart of annotation.DefaultMetrics.
		Annotation: annotation.Metrics{
			MaxWidth: 44,
			Margin:   1,
			Gap:      1,
		},
		Auth: AuthConfig{
			SubmitDelayMillis: 600,
		},
	}
}

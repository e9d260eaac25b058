package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Palette maps each class to a display color.
type Palette map[Class]colorful.Color

// chromaTokens maps each class to the chroma token whose style color it
// borrows.
var chromaTokens = map[Class]chroma.TokenType{
	Other:         chroma.Text,
	Constant:      chroma.LiteralNumber,
	Keyword:       chroma.Keyword,
	SecondaryWord: chroma.NameBuiltin,
	Preprocessor:  chroma.CommentPreproc,
	DataType:      chroma.KeywordType,
	Comment:       chroma.Comment,
}

// StylePalette derives a palette from a chroma style. Unknown style names
// fall back to chroma's default style.
func StylePalette(name string) Palette {
	if name == "" {
		name = DefaultStyle
	}
	style := styles.Get(name)
	text := style.Get(chroma.Text).Colour

	p := make(Palette, len(chromaTokens))
	for class, tt := range chromaTokens {
		c := style.Get(tt).Colour
		if !c.IsSet() {
			c = text
		}
		if !c.IsSet() {
			p[class] = colorful.Color{R: 1, G: 1, B: 1}
			continue
		}
		p[class] = fromChroma(c)
	}
	return p
}

func fromChroma(c chroma.Colour) colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// Color returns the color of class, or of Other when class has none.
func (p Palette) Color(class Class) colorful.Color {
	if c, ok := p[class]; ok {
		return c
	}
	return p[Other]
}

// Merge returns p with every class missing from it taken from fallback.
func (p Palette) Merge(fallback Palette) Palette {
	out := fallback.Clone()
	if out == nil {
		out = make(Palette, len(p))
	}
	for class, c := range p {
		out[class] = c
	}
	return out
}

// Clone returns a copy of p.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for class, c := range p {
		out[class] = c
	}
	return out
}

// ParseColor accepts "#rrggbb", "r,g,b", or an [r, g, b] list of 0..255
// numbers.
func ParseColor(v any) (colorful.Color, error) {
	switch v := v.(type) {
	case colorful.Color:
		return v, nil
	case string:
		if strings.Contains(v, ",") {
			parts := strings.Split(v, ",")
			comps := make([]any, len(parts))
			for i, part := range parts {
				n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
				if err != nil {
					return colorful.Color{}, fmt.Errorf("invalid color %q", v)
				}
				comps[i] = n
			}
			return ParseColor(comps)
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid color %q", v)
		}
		return c, nil
	case []any:
		if len(v) != 3 {
			return colorful.Color{}, fmt.Errorf("color needs 3 components, got %d", len(v))
		}
		var rgb [3]float64
		for i, comp := range v {
			n, ok := number(comp)
			if !ok || n < 0 || n > 255 {
				return colorful.Color{}, fmt.Errorf("color component %v out of range", comp)
			}
			rgb[i] = n / 255
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	default:
		return colorful.Color{}, fmt.Errorf("unsupported color value %T", v)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}

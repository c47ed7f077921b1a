package worldmap

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ocean is the sentinel tile index used for the border ring.
const Ocean = 0

// Category describes one kind of tile. The generator only ever looks at how
// many categories exist; names, glyphs and colors are for consumers.
type Category struct {
	Name  string
	Glyph rune
	Color color.RGBA
}

// TileCategorySet is the ordered list of available tile categories. Index 0
// is the ocean category.
type TileCategorySet []Category

// Len returns the number of categories.
func (s TileCategorySet) Len() int { return len(s) }

// Names returns the category names in order.
func (s TileCategorySet) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Palette returns the display color of every category, indexed by tile.
func (s TileCategorySet) Palette() []color.RGBA {
	palette := make([]color.RGBA, len(s))
	for i, c := range s {
		palette[i] = c.Color
	}
	return palette
}

// Glyph returns the rune used to print tile index v.
func (s TileCategorySet) Glyph(v int) rune {
	if v < 0 || v >= len(s) {
		return '?'
	}
	return s[v].Glyph
}

var knownCategories = map[string]Category{
	"ocean":    {Name: "ocean", Glyph: '~', Color: toRGBA(color.NRGBA{R: 28, G: 74, B: 140, A: 255})},
	"shallows": {Name: "shallows", Glyph: '-', Color: toRGBA(color.NRGBA{R: 64, G: 132, B: 196, A: 255})},
	"sand":     {Name: "sand", Glyph: '.', Color: toRGBA(color.NRGBA{R: 222, G: 204, B: 140, A: 255})},
	"plains":   {Name: "plains", Glyph: ',', Color: toRGBA(color.NRGBA{R: 112, G: 176, B: 84, A: 255})},
	"forest":   {Name: "forest", Glyph: '&', Color: toRGBA(color.NRGBA{R: 40, G: 100, B: 55, A: 255})},
	"mountain": {Name: "mountain", Glyph: '^', Color: toRGBA(color.NRGBA{R: 140, G: 132, B: 128, A: 255})},
	"desert":   {Name: "desert", Glyph: ':', Color: toRGBA(color.NRGBA{R: 210, G: 170, B: 96, A: 255})},
	"snow":     {Name: "snow", Glyph: '*', Color: toRGBA(color.NRGBA{R: 236, G: 240, B: 244, A: 255})},
	"swamp":    {Name: "swamp", Glyph: '%', Color: toRGBA(color.NRGBA{R: 76, G: 96, B: 60, A: 255})},
}

var fallbackColors = []color.RGBA{
	{R: 180, G: 90, B: 160, A: 255},
	{R: 90, G: 180, B: 170, A: 255},
	{R: 200, G: 120, B: 60, A: 255},
	{R: 150, G: 150, B: 220, A: 255},
}

// DefaultCategories returns the built-in tile set.
func DefaultCategories() TileCategorySet {
	return TileCategorySet{
		knownCategories["ocean"],
		knownCategories["plains"],
		knownCategories["forest"],
		knownCategories["mountain"],
		knownCategories["desert"],
	}
}

// ParseCategories builds a category set from a comma separated list of names.
// Known names get their built-in glyph and color; unknown names get their
// first letter and a color from a fallback cycle.
func ParseCategories(list string) (TileCategorySet, error) {
	var set TileCategorySet
	unknown := 0
	for _, raw := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if c, ok := knownCategories[name]; ok {
			set = append(set, c)
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		set = append(set, Category{
			Name:  name,
			Glyph: unicode.ToUpper(r),
			Color: fallbackColors[unknown%len(fallbackColors)],
		})
		unknown++
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("parse categories %q: %w", list, ErrNoCategories)
	}
	return set, nil
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

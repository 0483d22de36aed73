package sauce

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/notepid/go-sauce/internal/sauce/tables"
)

// FontID is a symbolic font identifier (e.g. "ibm_vga", "amiga_topaz1").
type FontID string

// FontOptions describes the display properties of a font, present only
// for the subset of fonts with known metrics (spec §4.5.1).
type FontOptions struct {
	CellWidth       int
	CellHeight      int
	PixelWidth      int
	PixelHeight     int
	DisplayAspect   string
	PixelRatio      string
	VStretchPercent int
}

// Font is one entry of the font registry.
type Font struct {
	ID       FontID
	Name     string
	Encoding string
	Options  *FontOptions
}

type fontYAML struct {
	Fonts []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Encoding string `yaml:"encoding"`
		Options  *struct {
			CellWidth       int    `yaml:"cell_width"`
			CellHeight      int    `yaml:"cell_height"`
			PixelWidth      int    `yaml:"pixel_width"`
			PixelHeight     int    `yaml:"pixel_height"`
			DisplayAspect   string `yaml:"display_aspect"`
			PixelRatio      string `yaml:"pixel_ratio"`
			VStretchPercent int    `yaml:"vstretch_percent"`
		} `yaml:"options"`
	} `yaml:"fonts"`
}

var (
	fontsOnce   sync.Once
	fontsByID   map[FontID]*Font
	fontsByName map[string]*Font
	fontList    []*Font
)

func loadFonts() {
	fontsOnce.Do(func() {
		var doc fontYAML
		if err := yaml.Unmarshal(tables.FontsYAML, &doc); err != nil {
			panic(fmt.Sprintf("sauce: embedded font table is malformed: %v", err))
		}
		fontsByID = make(map[FontID]*Font, len(doc.Fonts))
		fontsByName = make(map[string]*Font, len(doc.Fonts))
		fontList = make([]*Font, 0, len(doc.Fonts))
		for _, f := range doc.Fonts {
			font := &Font{ID: FontID(f.ID), Name: f.Name, Encoding: f.Encoding}
			if f.Options != nil {
				font.Options = &FontOptions{
					CellWidth:       f.Options.CellWidth,
					CellHeight:      f.Options.CellHeight,
					PixelWidth:      f.Options.PixelWidth,
					PixelHeight:     f.Options.PixelHeight,
					DisplayAspect:   f.Options.DisplayAspect,
					PixelRatio:      f.Options.PixelRatio,
					VStretchPercent: f.Options.VStretchPercent,
				}
			}
			fontsByID[font.ID] = font
			fontsByName[font.Name] = font
			fontList = append(fontList, font)
		}
	})
}

// FontByID looks a font up by its symbolic id. ok is false if unknown.
func FontByID(id FontID) (*Font, bool) {
	loadFonts()
	f, ok := fontsByID[id]
	return f, ok
}

// FontByName looks a font up by its exact SAUCE TInfoS spelling (e.g.
// "IBM VGA", "Amiga Topaz 1"). ok is false if unknown.
func FontByName(name string) (*Font, bool) {
	loadFonts()
	f, ok := fontsByName[name]
	return f, ok
}

// FontByIDAndCellSize looks up a font by id and, if found, verifies its
// cell size matches (w, h). ok is false if the font is unknown or has no
// matching display metrics.
func FontByIDAndCellSize(id FontID, w, h int) (*Font, bool) {
	f, ok := FontByID(id)
	if !ok || f.Options == nil {
		return nil, false
	}
	if f.Options.CellWidth != w || f.Options.CellHeight != h {
		return nil, false
	}
	return f, true
}

// FontOptionsOf returns the display properties of id, if known.
func FontOptionsOf(id FontID) (*FontOptions, bool) {
	f, ok := FontByID(id)
	if !ok || f.Options == nil {
		return nil, false
	}
	return f.Options, true
}

// AllFonts returns every font in the registry, in table order.
func AllFonts() []*Font {
	loadFonts()
	out := make([]*Font, len(fontList))
	copy(out, fontList)
	return out
}

// Package profile loads render profiles: TOML or YAML documents describing
// how a table should look, turned into table settings.
//
//	style = "modern"
//	header = "Linux Distributions"
//	align = "center"
//	correct_spans = true
//
//	[[widths]]
//	column = 1
//	size = 12
//	suffix = "..."
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/settings"
)

var (
	ErrUnknownFormat    = errors.New("unknown profile format")
	ErrUnknownStyle     = errors.New("unknown style")
	ErrUnknownAlignment = errors.New("unknown alignment")
)

// Format is the encoding of a profile document.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

type Profile struct {
	Style        string `toml:"style" yaml:"style"`
	Align        string `toml:"align" yaml:"align"`
	VAlign       string `toml:"valign" yaml:"valign"`
	Header       string `toml:"header" yaml:"header"`
	Footer       string `toml:"footer" yaml:"footer"`
	Title        string `toml:"title" yaml:"title"`
	CorrectSpans bool   `toml:"correct_spans" yaml:"correct_spans"`

	// MaxWidth shrinks the table to fit, MinWidth grows it. Zero leaves the
	// table at its natural width.
	MaxWidth int `toml:"max_width" yaml:"max_width"`
	MinWidth int `toml:"min_width" yaml:"min_width"`

	Padding *Sides   `toml:"padding" yaml:"padding"`
	Margin  *Sides   `toml:"margin" yaml:"margin"`
	Shadow  *Shadow  `toml:"shadow" yaml:"shadow"`
	Spans   []Span   `toml:"spans" yaml:"spans"`
	Widths  []Column `toml:"widths" yaml:"widths"`
}

type Sides struct {
	Top    int `toml:"top" yaml:"top"`
	Bottom int `toml:"bottom" yaml:"bottom"`
	Left   int `toml:"left" yaml:"left"`
	Right  int `toml:"right" yaml:"right"`
}

type Shadow struct {
	Size   int    `toml:"size" yaml:"size"`
	Offset *int   `toml:"offset" yaml:"offset"`
	Left   bool   `toml:"left" yaml:"left"`
	Top    bool   `toml:"top" yaml:"top"`
	Fill   string `toml:"fill" yaml:"fill"`
}

type Span struct {
	Row  int `toml:"row" yaml:"row"`
	Col  int `toml:"col" yaml:"col"`
	Size int `toml:"size" yaml:"size"`
}

// Column fixes the width of one column.
type Column struct {
	Column int    `toml:"column" yaml:"column"`
	Size   int    `toml:"size" yaml:"size"`
	Wrap   bool   `toml:"wrap" yaml:"wrap"`
	Suffix string `toml:"suffix" yaml:"suffix"`
}

// Parse decodes a profile document.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to parse toml profile: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse yaml profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	return &p, nil
}

// Load reads a profile file, picking the format from its extension.
func Load(path string) (*Profile, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

var styles = map[string]func() settings.Style{
	"ascii":            settings.ASCII,
	"ascii_rounded":    settings.ASCIIRounded,
	"blank":            settings.Blank,
	"dots":             settings.Dots,
	"empty":            settings.Empty,
	"extended":         settings.Extended,
	"markdown":         settings.Markdown,
	"modern":           settings.Modern,
	"psql":             settings.Psql,
	"re_structured":    settings.ReStructuredText,
	"restructuredtext": settings.ReStructuredText,
	"rounded":          settings.Rounded,
	"sharp":            settings.Sharp,
}

// StyleNames lists the styles a profile may name.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	return names
}

// StyleByName returns the predefined style called name.
func StyleByName(name string) (settings.Style, error) {
	fn, ok := styles[strings.ToLower(name)]
	if !ok {
		return settings.Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return fn(), nil
}

// Options converts the profile into table settings. Panels are inserted
// before spans and widths are applied, so span rows count the header.
func (p *Profile) Options() ([]settings.TableOption, error) {
	var opts []settings.TableOption

	if p.Style != "" {
		s, err := StyleByName(p.Style)
		if err != nil {
			return nil, err
		}
		opts = append(opts, s)
	}
	if p.Padding != nil {
		opts = append(opts, settings.Padding(p.Padding.Top, p.Padding.Bottom, p.Padding.Left, p.Padding.Right))
	}
	if p.Align != "" {
		a, err := alignment(p.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, a)
	}
	if p.VAlign != "" {
		a, err := alignment(p.VAlign)
		if err != nil {
			return nil, err
		}
		opts = append(opts, a)
	}
	if p.Header != "" {
		opts = append(opts, settings.Header(p.Header))
	}
	if p.Footer != "" {
		opts = append(opts, settings.Footer(p.Footer))
	}
	for _, s := range p.Spans {
		opts = append(opts, settings.Modify(entity.Cell(s.Row, s.Col), settings.Span(s.Size)))
	}
	for _, c := range p.Widths {
		w := settings.Width(c.Size)
		if c.Wrap {
			w = settings.WrapWidth(c.Size)
		}
		opts = append(opts, settings.Modify(entity.Column(c.Column), w.Suffix(c.Suffix)))
	}
	if p.CorrectSpans {
		opts = append(opts, settings.CorrectSpans())
	}
	if p.Title != "" {
		opts = append(opts, settings.TopLineText(p.Title).Offset(1))
	}
	if p.Margin != nil {
		opts = append(opts, settings.Margin(p.Margin.Top, p.Margin.Bottom, p.Margin.Left, p.Margin.Right))
	}
	if p.Shadow != nil {
		opts = append(opts, p.Shadow.option())
	}
	if p.MinWidth > 0 {
		opts = append(opts, settings.IncreaseWidth(p.MinWidth))
	}
	if p.MaxWidth > 0 {
		opts = append(opts, settings.ShrinkWidth(p.MaxWidth, ""))
	}
	return opts, nil
}

func (s *Shadow) option() settings.ShadowOption {
	opt := settings.Shadow(s.Size)
	if s.Offset != nil {
		opt = opt.Offset(*s.Offset)
	}
	if s.Left {
		opt = opt.Left()
	}
	if s.Top {
		opt = opt.Top()
	}
	if fill := []rune(s.Fill); len(fill) > 0 {
		opt = opt.Fill(fill[0])
	}
	return opt
}

func alignment(name string) (settings.Alignment, error) {
	switch strings.ToLower(name) {
	case "left":
		return settings.AlignLeft(), nil
	case "center", "centre":
		return settings.AlignCenter(), nil
	case "right":
		return settings.AlignRight(), nil
	case "top":
		return settings.AlignTop(), nil
	case "middle":
		return settings.AlignMiddle(), nil
	case "bottom":
		return settings.AlignBottom(), nil
	}
	return settings.Alignment{}, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}

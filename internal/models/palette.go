package models

// Palette is the fixed set of named color slots applied to the presentation layer.
type Palette struct {
	Background string `json:"background" yaml:"background" validate:"required,hexcolor"`
	Surface    string `json:"surface" yaml:"surface" validate:"required,hexcolor"`
	SurfaceAlt string `json:"surfaceAlt" yaml:"surface_alt" validate:"required,hexcolor"`
	Text       string `json:"text" yaml:"text" validate:"required,hexcolor"`
	Muted      string `json:"muted" yaml:"muted" validate:"required,hexcolor"`
	Accent     string `json:"accent" yaml:"accent" validate:"required,hexcolor"`
	AccentSoft string `json:"accentSoft" yaml:"accent_soft" validate:"required,hexcolor"`
	Border     string `json:"border" yaml:"border" validate:"required,hexcolor"`
}

// PaletteVar is one palette slot exposed as a styling variable, e.g. "--color-accent".
type PaletteVar struct {
	Name  string
	Value string
}

// Vars returns the palette slots as styling variables in declaration order.
func (p Palette) Vars() []PaletteVar {
	return []PaletteVar{
		{Name: "--color-background", Value: p.Background},
		{Name: "--color-surface", Value: p.Surface},
		{Name: "--color-surfaceAlt", Value: p.SurfaceAlt},
		{Name: "--color-text", Value: p.Text},
		{Name: "--color-muted", Value: p.Muted},
		{Name: "--color-accent", Value: p.Accent},
		{Name: "--color-accentSoft", Value: p.AccentSoft},
		{Name: "--color-border", Value: p.Border},
	}
}

package render

// Options describes the canvas layout. Sizes are CSS-style units: fonts in points,
// everything else in pixels before Scale is applied.
type Options struct {
	Width      int
	Height     int
	Scale      int
	LeftMargin float64
	TitleSize  float64
	TextSize   float64
	Spacing    float64
	Background string
	Foreground string
}

// DefaultOptions is the 300x100 black card with white monospace text.
func DefaultOptions() Options {
	return Options{
		Width:      300,
		Height:     100,
		Scale:      1,
		LeftMargin: 4,
		TitleSize:  10,
		TextSize:   8,
		Spacing:    4,
		Background: "#000",
		Foreground: "#fff",
	}
}

// withDefaults fills zero values from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.LeftMargin <= 0 {
		o.LeftMargin = def.LeftMargin
	}
	if o.TitleSize <= 0 {
		o.TitleSize = def.TitleSize
	}
	if o.TextSize <= 0 {
		o.TextSize = def.TextSize
	}
	if o.Spacing <= 0 {
		o.Spacing = def.Spacing
	}
	if o.Background == "" {
		o.Background = def.Background
	}
	if o.Foreground == "" {
		o.Foreground = def.Foreground
	}
	return o
}

// TitleBaseline is the unscaled y of the title baseline.
func (o Options) TitleBaseline() float64 {
	return o.TitleSize + o.Spacing
}

// RowBaseline is the unscaled y of row i's baseline.
func (o Options) RowBaseline(i int) float64 {
	return o.TitleSize + 2*o.Spacing + o.TextSize + (o.TextSize+o.Spacing)*float64(i)
}

package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

// pointsToPixels converts font points to pixels at 96 dpi.
const pointsToPixels = 96.0 / 72.0

// Renderer draws stats records onto a fixed-size raster card.
// A Renderer owns its font source; call Close when done.
type Renderer struct {
	opts   Options
	source *text.FontSource
	title  text.Face
	row    text.Face
}

// New loads the embedded monospace font and prepares faces for opts.
func New(opts Options) (*Renderer, error) {
	opts = opts.withDefaults()
	source, err := text.NewFontSource(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	scale := float64(opts.Scale)
	return &Renderer{
		opts:   opts,
		source: source,
		title:  source.Face(opts.TitleSize * pointsToPixels * scale),
		row:    source.Face(opts.TextSize * pointsToPixels * scale),
	}, nil
}

// Render draws the title and one row per record. Rows that fall below the canvas are clipped.
func (r *Renderer) Render(records []stats.UserStat) (image.Image, error) {
	if r == nil || r.source == nil {
		return nil, errors.New("renderer not initialized")
	}
	scale := float64(r.opts.Scale)

	dc := gg.NewContext(r.opts.Width*r.opts.Scale, r.opts.Height*r.opts.Scale)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(r.opts.Background))

	dc.SetHexColor(r.opts.Foreground)
	dc.SetFont(r.title)
	dc.DrawString(stats.Title(records), r.opts.LeftMargin*scale, r.opts.TitleBaseline()*scale)

	dc.SetFont(r.row)
	for i, rec := range records {
		dc.DrawString(stats.Row(rec), r.opts.LeftMargin*scale, r.opts.RowBaseline(i)*scale)
	}

	return dc.Image(), nil
}

// EncodePNG renders records and writes the PNG encoding to w.
func (r *Renderer) EncodePNG(w io.Writer, records []stats.UserStat) error {
	img, err := r.Render(records)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Close releases the font source.
func (r *Renderer) Close() error {
	if r == nil || r.source == nil {
		return nil
	}
	return r.source.Close()
}

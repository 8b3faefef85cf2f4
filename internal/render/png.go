package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ayoisaiah/hourclock/internal/models"
)

const (
	supersample = 3
	labelScale  = 2
)

// Options controls the rendered image.
type Options struct {
	Background  string
	Stroke      string
	Size        int
	InnerRadius int
	OuterRadius int
	LabelRadius int
	StrokeWidth int
	// NoLabels disables the wedge numbers
	NoLabels bool
}

// DefaultOptions returns the options used for clock.png.
func DefaultOptions() Options {
	return Options{
		Size:        400,
		InnerRadius: 30,
		OuterRadius: 180,
		LabelRadius: 140,
		StrokeWidth: 2,
		Background:  "#000000",
		Stroke:      "#ffffff",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.Size <= 0 {
		o.Size = def.Size
	}

	if o.OuterRadius <= 0 || o.OuterRadius > o.Size/2 {
		o.OuterRadius = o.Size/2 - 20
		if o.OuterRadius <= 0 {
			o.OuterRadius = o.Size / 2
		}
	}

	if o.InnerRadius < 0 || o.InnerRadius >= o.OuterRadius {
		o.InnerRadius = 0
	}

	if o.LabelRadius <= 0 {
		o.LabelRadius = (o.InnerRadius + o.OuterRadius*3) / 4
	}

	if o.StrokeWidth < 0 {
		o.StrokeWidth = 0
	}

	if o.Background == "" {
		o.Background = def.Background
	}

	if o.Stroke == "" {
		o.Stroke = def.Stroke
	}

	return o
}

// PNG renders display as a ring chart and encodes it to w.
func PNG(w io.Writer, display []models.DisplaySegment, opts Options) error {
	return png.Encode(w, Draw(display, opts))
}

// Draw renders display as a ring chart starting at 12 o'clock and running
// clockwise. Wedges are separated by a stroke and numbered from 1 in
// display order.
func Draw(display []models.DisplaySegment, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	wedges := Wedges(display)

	fills := make([]color.Color, len(wedges))
	for i := range wedges {
		fills[i] = parseColor(wedges[i].Segment.Color, color.Gray{Y: 0x44})
	}

	bg := parseColor(opts.Background, color.Black)
	stroke := parseColor(opts.Stroke, color.White)

	big := drawRing(wedges, fills, bg, stroke, opts)

	dst := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), xdraw.Src, nil)

	if !opts.NoLabels {
		center := float64(opts.Size) / 2

		for _, w := range wedges {
			theta := w.Mid() * 2 * math.Pi
			x := center + float64(opts.LabelRadius)*math.Sin(theta)
			y := center - float64(opts.LabelRadius)*math.Cos(theta)

			drawLabel(dst, strconv.Itoa(w.Index+1), int(math.Round(x)), int(math.Round(y)))
		}
	}

	return dst
}

// drawRing paints the ring at supersampled resolution.
func drawRing(
	wedges []Wedge,
	fills []color.Color,
	bg, stroke color.Color,
	opts Options,
) *image.RGBA {
	size := opts.Size * supersample
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	inner := float64(opts.InnerRadius * supersample)
	outer := float64(opts.OuterRadius * supersample)
	halfStroke := float64(opts.StrokeWidth*supersample) / 2

	for y := range size {
		for x := range size {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			r := math.Hypot(dx, dy)

			if r < inner-halfStroke || r > outer+halfStroke || len(wedges) == 0 {
				img.Set(x, y, bg)
				continue
			}

			if halfStroke > 0 && (r > outer-halfStroke || r < inner+halfStroke) {
				img.Set(x, y, stroke)
				continue
			}

			frac := angleFrac(dx, dy)

			if halfStroke > 0 && len(wedges) > 1 && nearBoundary(wedges, frac, r, halfStroke) {
				img.Set(x, y, stroke)
				continue
			}

			i := WedgeAt(wedges, frac)
			if i < 0 {
				img.Set(x, y, bg)
				continue
			}

			img.Set(x, y, fills[i])
		}
	}

	return img
}

// nearBoundary reports whether the point at angle frac and radius r lies
// within halfStroke pixels of a wedge edge.
func nearBoundary(wedges []Wedge, frac, r, halfStroke float64) bool {
	for i := range wedges {
		d := math.Abs(frac - wedges[i].From)
		if d > 0.5 {
			d = 1 - d
		}

		if d*2*math.Pi*r < halfStroke {
			return true
		}
	}

	return false
}

// drawLabel writes text centred on (x, y) in white with a black outline.
func drawLabel(dst *image.RGBA, text string, x, y int) {
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	const pad = 1

	small := image.NewRGBA(image.Rect(0, 0, width+pad*2, height+pad*2))
	baseline := pad + face.Metrics().Ascent.Ceil()

	outline := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		outline.Dot = fixed.P(pad+off[0], baseline+off[1])
		outline.DrawString(text)
	}

	fill := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(pad, baseline),
	}
	fill.DrawString(text)

	sb := small.Bounds()
	w := sb.Dx() * labelScale
	h := sb.Dy() * labelScale

	target := image.Rect(x-w/2, y-h/2, x-w/2+w, y-h/2+h)

	xdraw.NearestNeighbor.Scale(dst, target, small, sb, xdraw.Over, nil)
}

func parseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}

	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

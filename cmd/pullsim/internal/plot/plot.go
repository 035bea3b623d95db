// Package plot renders offset-over-time charts for replay traces.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Default chart size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 320
)

const (
	marginLeft   = 44
	marginRight  = 12
	marginTop    = 22
	marginBottom = 24
)

// Palette used by Render.
var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	AxisColor  = color.RGBA{0x60, 0x60, 0x60, 0xff}
	FillColor  = color.RGBA{0x42, 0x85, 0xf4, 0xff}
	TextColor  = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// Point is one sample of the plotted series.
type Point struct {
	Time  time.Duration
	Value int
}

// Guide is a labelled horizontal reference line.
type Guide struct {
	Label string
	Value int
	Color color.RGBA
}

// Chart is a single series with optional guides.
type Chart struct {
	Title  string
	Points []Point
	Guides []Guide
	Width  int
	Height int
}

type frame struct {
	plot   image.Rectangle
	span   time.Duration
	maxVal int
}

func (c *Chart) frame() frame {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	f := frame{
		plot:   image.Rect(marginLeft, marginTop, w-marginRight, h-marginBottom),
		maxVal: 1,
	}
	for _, p := range c.Points {
		f.span = max(f.span, p.Time)
		f.maxVal = max(f.maxVal, p.Value)
	}
	for _, g := range c.Guides {
		f.maxVal = max(f.maxVal, g.Value)
	}
	f.maxVal += f.maxVal / 10
	if f.span <= 0 {
		f.span = time.Millisecond
	}
	return f
}

func (f frame) x(t time.Duration) float32 {
	return float32(f.plot.Min.X) + float32(f.plot.Dx())*float32(t)/float32(f.span)
}

func (f frame) y(v int) float32 {
	return float32(f.plot.Max.Y) - float32(f.plot.Dy())*float32(v)/float32(f.maxVal)
}

// Render draws the chart: the series as a filled area, guides as dashed
// lines and labels for the axes.
func Render(c *Chart) *image.RGBA {
	f := c.frame()
	bounds := image.Rect(0, 0, f.plot.Max.X+marginRight, f.plot.Max.Y+marginBottom)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(Background), image.Point{}, draw.Src)

	if len(c.Points) > 0 {
		fillSeries(img, f, c.Points)
	}
	for _, g := range c.Guides {
		y := int(f.y(g.Value))
		for x := f.plot.Min.X; x < f.plot.Max.X; x++ {
			if (x/4)%2 == 0 {
				img.SetRGBA(x, y, g.Color)
			}
		}
		label(img, f.plot.Max.X-7*len(g.Label)-2, y-3, g.Label, g.Color)
	}

	for x := f.plot.Min.X; x <= f.plot.Max.X; x++ {
		img.SetRGBA(x, f.plot.Max.Y, AxisColor)
	}
	for y := f.plot.Min.Y; y <= f.plot.Max.Y; y++ {
		img.SetRGBA(f.plot.Min.X, y, AxisColor)
	}

	label(img, 4, marginTop+10, fmt.Sprint(f.maxVal), TextColor)
	label(img, marginLeft-12, f.plot.Max.Y, "0", TextColor)
	label(img, f.plot.Min.X, bounds.Max.Y-6, "0s", TextColor)
	end := fmt.Sprintf("%.2fs", f.span.Seconds())
	label(img, f.plot.Max.X-7*len(end), bounds.Max.Y-6, end, TextColor)
	if c.Title != "" {
		label(img, marginLeft, marginTop-8, c.Title, TextColor)
	}
	return img
}

// fillSeries rasterizes the area between the series and the time axis.
func fillSeries(img *image.RGBA, f frame, points []Point) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	base := float32(f.plot.Max.Y)
	z.MoveTo(f.x(points[0].Time), base)
	for _, p := range points {
		z.LineTo(f.x(p.Time), f.y(p.Value))
	}
	z.LineTo(f.x(points[len(points)-1].Time), base)
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(FillColor), image.Point{})
}

func label(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// WritePNG renders the chart and encodes it as PNG.
func WritePNG(w io.Writer, c *Chart) error {
	return png.Encode(w, Render(c))
}

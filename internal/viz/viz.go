// Package viz renders a computed camera path to an image for debugging:
// the scale curve and both center coordinates plotted over time.
package viz

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/ceewaigit/bokeh-sub013/internal/camera"
	"github.com/ceewaigit/bokeh-sub013/internal/timeline"
)

var (
	bgColor     = color.RGBA{18, 18, 24, 255}
	gridColor   = color.RGBA{48, 48, 60, 255}
	scaleColor  = color.RGBA{240, 240, 240, 255}
	centerXCol  = color.RGBA{235, 110, 100, 255}
	centerYCol  = color.RGBA{110, 200, 130, 255}
	blockStripe = color.RGBA{70, 90, 140, 80}
)

// Render plots the path into an image of the requested size. Plotting
// happens at 2x and is downsampled, which keeps thin traces readable.
func Render(p *timeline.Project, frames []timeline.CameraPathFrame, width, height int) *image.RGBA {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 360
	}

	w2, h2 := width*2, height*2
	img := image.NewRGBA(image.Rect(0, 0, w2, h2))
	fill(img, bgColor)

	// Quarter-height gridlines.
	for i := 1; i < 4; i++ {
		y := h2 * i / 4
		for x := 0; x < w2; x++ {
			img.SetRGBA(x, y, gridColor)
		}
	}

	n := len(frames)
	if n > 1 {
		maxScale := 1.0
		for i := range p.Zooms {
			if p.Zooms[i].TargetScale > maxScale {
				maxScale = p.Zooms[i].TargetScale
			}
		}

		for x := 0; x < w2; x++ {
			i := x * (n - 1) / (w2 - 1)
			f := frames[i]

			if f.Block != nil {
				for y := 0; y < h2; y++ {
					blend(img, x, y, blockStripe)
				}
			}

			plot(img, x, h2, f.CenterX, centerXCol)
			plot(img, x, h2, f.CenterY, centerYCol)

			s := scaleOf(p, f, i)
			plot(img, x, h2, (s-1)/(maxScale-1+1e-9), scaleColor)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

// WritePNG renders the path and writes it to a file.
func WritePNG(p *timeline.Project, frames []timeline.CameraPathFrame, width, height int, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, Render(p, frames, width, height))
}

func scaleOf(p *timeline.Project, f timeline.CameraPathFrame, i int) float64 {
	if f.Block == nil {
		return 1
	}
	frame := i
	if i < len(p.Layout) {
		frame = p.Layout[i].Frame
	}
	params := f.Block.Params()
	tMs := timeline.FrameTimeMs(frame, p.Settings.FPS)
	return camera.Scale(tMs-params.StartMs, params.DurationMs(), params.TargetScale,
		params.IntroMs, params.OutroMs, params.Style)
}

func plot(img *image.RGBA, x, h int, v float64, c color.RGBA) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	y := int((1 - v) * float64(h-1))
	for dy := -1; dy <= 1; dy++ {
		if y+dy >= 0 && y+dy < h {
			img.SetRGBA(x, y+dy, c)
		}
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func blend(img *image.RGBA, x, y int, c color.RGBA) {
	dst := img.RGBAAt(x, y)
	a := uint32(c.A)
	dst.R = uint8((uint32(c.R)*a + uint32(dst.R)*(255-a)) / 255)
	dst.G = uint8((uint32(c.G)*a + uint32(dst.G)*(255-a)) / 255)
	dst.B = uint8((uint32(c.B)*a + uint32(dst.B)*(255-a)) / 255)
	img.SetRGBA(x, y, dst)
}

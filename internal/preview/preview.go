package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/cardmotion/internal/geom"
	"github.com/ivlev/cardmotion/internal/path"
	"github.com/ivlev/cardmotion/internal/system"
)

// Projection selects which two axes of the path land on the image plane.
type Projection int

const (
	// ProjectionTop maps world X/Z to image x/y (view from above).
	ProjectionTop Projection = iota
	// ProjectionFront maps world X/Y to image x/y (view from the front).
	ProjectionFront
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	axisColor       = color.RGBA{R: 60, G: 60, B: 72, A: 255}
	pathColor       = color.RGBA{R: 235, G: 235, B: 245, A: 255}
	startColor      = color.RGBA{R: 90, G: 200, B: 120, A: 255}
)

// RenderPath draws a path's precomputed polyline into a size x size image.
// The polyline is drawn at 2x and downscaled with a Catmull-Rom filter for
// antialiasing.
func RenderPath(gen path.Generator, resolution, size int, projection Projection) image.Image {
	if resolution < 2 {
		resolution = 2
	}
	if size < 16 {
		size = 16
	}
	samples := gen.PrecomputePath(resolution)

	super := size * 2
	canvas := system.GetImage(image.Rect(0, 0, super, super))
	defer system.PutImage(canvas)
	fill(canvas, backgroundColor)
	drawAxes(canvas, axisColor)

	points := projectSamples(samples, projection, super)
	for i := 1; i < len(points); i++ {
		drawLine(canvas, points[i-1], points[i], pathColor)
	}
	if len(points) > 0 {
		drawMarker(canvas, points[0], startColor)
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out
}

// WritePNG encodes an image to a PNG file.
func WritePNG(img image.Image, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

type imagePoint struct {
	x, y float64
}

// projectSamples maps world-space samples into image coordinates, fitting
// the path's bounding box into the canvas with a margin.
func projectSamples(samples []geom.Point3D, projection Projection, size int) []imagePoint {
	if len(samples) == 0 {
		return nil
	}

	pick := func(p geom.Point3D) (float64, float64) {
		if projection == ProjectionFront {
			return p.X, -p.Y // image y grows downward
		}
		return p.X, p.Z
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range samples {
		x, y := pick(s)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span < 1e-9 {
		span = 1
	}
	margin := 0.1 * float64(size)
	scale := (float64(size) - 2*margin) / span

	// Center the bounding box on the canvas.
	offsetX := margin + (float64(size)-2*margin-(maxX-minX)*scale)/2
	offsetY := margin + (float64(size)-2*margin-(maxY-minY)*scale)/2

	points := make([]imagePoint, len(samples))
	for i, s := range samples {
		x, y := pick(s)
		points[i] = imagePoint{
			x: offsetX + (x-minX)*scale,
			y: offsetY + (y-minY)*scale,
		}
	}
	return points
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawAxes(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	midX := (b.Min.X + b.Max.X) / 2
	midY := (b.Min.Y + b.Max.Y) / 2
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetRGBA(x, midY, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.SetRGBA(midX, y, c)
	}
}

// drawLine plots a segment by stepping one pixel at a time.
func drawLine(img *image.RGBA, from, to imagePoint, c color.RGBA) {
	dx := to.x - from.x
	dy := to.y - from.y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		img.SetRGBA(int(from.x+dx*t), int(from.y+dy*t), c)
	}
}

func drawMarker(img *image.RGBA, at imagePoint, c color.RGBA) {
	cx, cy := int(at.x), int(at.y)
	for y := cy - 2; y <= cy+2; y++ {
		for x := cx - 2; x <= cx+2; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

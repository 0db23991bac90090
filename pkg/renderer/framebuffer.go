package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/seridescent/raytracing/pkg/core"
)

// Framebuffer accumulates linear radiance values per pixel.
// Values are averaged over samples and gamma corrected on output.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// At returns the linear color stored at pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Set stores a linear color at pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// vec3ToColor converts a linear color to RGBA with gamma 2 correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

// quantize maps a linear component to an 8-bit value. NaN and negative
// values collapse to black rather than reaching Sqrt and poisoning the
// image.
func quantize(component float64) uint8 {
	if math.IsNaN(component) || component <= 0 {
		return 0
	}
	gamma := math.Sqrt(component)
	clamped := math.Min(gamma, 0.999)
	return uint8(256 * clamped)
}

// ToImage converts the framebuffer to an 8-bit RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(fb.At(x, y)))
		}
	}
	return img
}

// WritePPM writes the framebuffer in plain PPM (P3) format
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.width, fb.height); err != nil {
		return err
	}
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y)
			_, err := fmt.Fprintf(bw, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WritePNG writes the framebuffer as a PNG image
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

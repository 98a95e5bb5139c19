// Package preview renders how an image would look when every pixel is
// shown by a lighting device with a restricted color gamut.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/xybri"
	"github.com/kovidgoyal/xybri/gamut"
)

var _ = fmt.Print

type config struct {
	concurrency int
	triangle    *gamut.Triangle
}

// Option sets an optional parameter for Simulate.
type Option func(*config)

// Concurrency sets the number of goroutines used, zero, the default, means
// one per CPU.
func Concurrency(n int) Option {
	return func(c *config) {
		c.concurrency = max(0, n)
	}
}

// Gamut overrides the gamut of the device model passed to Simulate, for
// devices that report their own gamut.
func Gamut(t gamut.Triangle) Option {
	return func(c *config) {
		c.triangle = &t
	}
}

type mapper struct {
	triangle gamut.Triangle
	mu       sync.Mutex
	err      error
}

func (m *mapper) set_err(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err == nil {
		m.err = err
	}
}

func (m *mapper) convert(xyb xybri.XYBri) (xybri.RGB, bool) {
	ans, err := xybri.XYBriToRGB(xybri.XYBriForTriangle(xyb, m.triangle))
	if err != nil {
		m.set_err(err)
		return ans, false
	}
	return ans, true
}

func (m *mapper) convert8(c []uint8) {
	if ans, ok := m.convert(xybri.RGB8ToXYBri(c[0], c[1], c[2])); ok {
		c[0], c[1], c[2] = xybri.To8Bit(ans.R), xybri.To8Bit(ans.G), xybri.To8Bit(ans.B)
	}
}

func (m *mapper) convert16(c []uint16) {
	xyb, err := xybri.RGBToXYBri(xybri.RGB{R: float64(c[0]) / 0xffff, G: float64(c[1]) / 0xffff, B: float64(c[2]) / 0xffff})
	if err != nil {
		m.set_err(err)
		return
	}
	if ans, ok := m.convert(xyb); ok {
		c[0], c[1], c[2] = xybri.To16Bit(ans.R), xybri.To16Bit(ans.G), xybri.To16Bit(ans.B)
	}
}

func premultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * uint16(a)) / uint16(0xff))
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * 0xff) / uint16(a))
}

func unpremultiply(r, a uint32) uint16 {
	return uint16((r * 0xffff) / a)
}

// Simulate replaces every pixel of image_any with the color the device
// model m would actually show for it. Images of type *image.NRGBA,
// *image.RGBA, *image.NRGBA64 and *image.Paletted are modified in place
// and returned. Other image types are converted into a new image. Fully
// transparent pixels are left alone.
func Simulate(image_any image.Image, m gamut.Model, opts ...Option) (ans image.Image, err error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	mp := mapper{triangle: gamut.TriangleForModel(m)}
	if cfg.triangle != nil {
		mp.triangle = *cfg.triangle
	}
	if ans, err = simulate(image_any, &mp, cfg.concurrency); err == nil {
		err = mp.err
	}
	return
}

func simulate(image_any image.Image, m *mapper, concurrency int) (ans image.Image, err error) {
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = image_any
	if width < 1 || height < 1 {
		return
	}
	var f func(start, limit int)
	switch img := image_any.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					if row[3] != 0 {
						m.convert8(row[0:3:3])
					}
					row = row[4:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					r := row[0:3:3]
					if a := row[3]; a != 0 {
						r[0], r[1], r[2] = unpremultiply8(r[0], a), unpremultiply8(r[1], a), unpremultiply8(r[2], a)
						m.convert8(r)
						r[0], r[1], r[2] = premultiply8(r[0], a), premultiply8(r[1], a), premultiply8(r[2], a)
					}
					row = row[4:]
				}
			}
		}
	case *image.NRGBA64:
		f = func(start, limit int) {
			sl := []uint16{0, 0, 0}
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:8:8]
					if s[6] != 0 || s[7] != 0 {
						sl[0] = uint16(s[0])<<8 | uint16(s[1])
						sl[1] = uint16(s[2])<<8 | uint16(s[3])
						sl[2] = uint16(s[4])<<8 | uint16(s[5])
						m.convert16(sl)
						s[0], s[1] = uint8(sl[0]>>8), uint8(sl[0])
						s[2], s[3] = uint8(sl[1]>>8), uint8(sl[1])
						s[4], s[5] = uint8(sl[2]>>8), uint8(sl[2])
					}
					row = row[8:]
				}
			}
		}
	case *image.Paletted:
		sl := []uint16{0, 0, 0}
		for i, c := range img.Palette {
			r, g, b, a := c.RGBA()
			if a != 0 {
				sl[0], sl[1], sl[2] = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a)
				m.convert16(sl)
				img.Palette[i] = color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a)}
			}
		}
		return
	case *image.Gray:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[width-1]
				drow := d.Pix[d.Stride*y:]
				_ = drow[4*(width-1)]
				for _, gray := range row[:width] {
					s := drow[0:4:4]
					s[0], s[1], s[2], s[3] = gray, gray, gray, 0xff
					m.convert8(s[0:3:3])
					drow = drow[4:]
				}
			}
		}
	default:
		d := image.NewNRGBA64(b)
		draw.Draw(d, b, img, b.Min, draw.Src)
		return simulate(d, m, concurrency)
	}
	err = parallel.Run_in_parallel_over_range(concurrency, f, 0, height)
	return
}

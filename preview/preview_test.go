package preview

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"testing"

	"github.com/kovidgoyal/xybri/gamut"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	green = color.NRGBA{0, 0xff, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
)

func assert_close(t *testing.T, expected, actual color.Color, tolerance int) {
	t.Helper()
	e := color.NRGBAModel.Convert(expected).(color.NRGBA)
	a := color.NRGBAModel.Convert(actual).(color.NRGBA)
	d := func(x, y uint8) int { return max(int(x), int(y)) - min(int(x), int(y)) }
	if d(e.R, a.R) > tolerance || d(e.G, a.G) > tolerance || d(e.B, a.B) > tolerance || e.A != a.A {
		t.Fatalf("color mismatch: expected %v got %v", e, a)
	}
}

func primaries_image(h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, h))
	for y := range h {
		img.SetNRGBA(0, y, red)
		img.SetNRGBA(1, y, green)
		img.SetNRGBA(2, y, blue)
		img.SetNRGBA(3, y, color.NRGBA{0xff, 0, 0, 0})
	}
	return img
}

func TestSimulateNRGBA(t *testing.T) {
	h := 7 * runtime.GOMAXPROCS(0)
	for _, c := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("concurrency=%d", c), func(t *testing.T) {
			img := primaries_image(h)
			ans, err := Simulate(img, gamut.LCT001, Concurrency(c))
			require.NoError(t, err)
			require.Same(t, img, ans)
			for y := range h {
				require.Equal(t, color.NRGBA{224, 80, 0, 0xff}, img.NRGBAAt(0, y))
				require.Equal(t, color.NRGBA{226, 226, 71, 0xff}, img.NRGBAAt(1, y))
				require.Equal(t, color.NRGBA{29, 31, 176, 0xff}, img.NRGBAAt(2, y))
				// transparent pixels are untouched
				require.Equal(t, color.NRGBA{0xff, 0, 0, 0}, img.NRGBAAt(3, y))
			}
		})
	}
}

func TestSimulateUnknownModel(t *testing.T) {
	img := primaries_image(3)
	orig := primaries_image(3)
	_, err := Simulate(img, "unknown")
	require.NoError(t, err)
	for x := range 4 {
		assert_close(t, orig.At(x, 0), img.At(x, 0), 2)
	}
	// an explicit gamut overrides the model
	img = primaries_image(3)
	_, err = Simulate(img, gamut.LCT001, Gamut(gamut.TriangleForModel("unknown")))
	require.NoError(t, err)
	assert_close(t, red, img.At(0, 1), 2)
}

func TestSimulateImageTypes(t *testing.T) {
	r := image.Rect(0, 0, 3, 5)
	expected_red := color.NRGBA{224, 80, 0, 0xff}

	rgba := image.NewRGBA(r)
	rgba.Set(1, 1, red)
	ans, err := Simulate(rgba, gamut.LCT001)
	require.NoError(t, err)
	require.IsType(t, &image.RGBA{}, ans)
	assert_close(t, expected_red, ans.At(1, 1), 0)

	n64 := image.NewNRGBA64(r)
	n64.Set(2, 3, red)
	ans, err = Simulate(n64, gamut.LCT001)
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA64{}, ans)
	c := n64.NRGBA64At(2, 3)
	require.InDelta(t, 57507, int(c.R), 1)
	require.InDelta(t, 20656, int(c.G), 1)
	require.Equal(t, uint16(0), c.B)
	require.Equal(t, color.NRGBA64{}, n64.NRGBA64At(0, 0))

	pal := image.NewPaletted(r, color.Palette{color.Transparent, red})
	pal.SetColorIndex(0, 0, 1)
	ans, err = Simulate(pal, gamut.LCT001)
	require.NoError(t, err)
	require.IsType(t, &image.Paletted{}, ans)
	assert_close(t, expected_red, ans.At(0, 0), 0)
	assert_close(t, color.Transparent, ans.At(1, 1), 0)

	gray := image.NewGray(r)
	for i := range gray.Pix {
		gray.Pix[i] = 128
	}
	ans, err = Simulate(gray, gamut.LCT001)
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA{}, ans)
	assert_close(t, color.NRGBA{128, 128, 128, 0xff}, ans.At(2, 4), 1)

	// unhandled types are converted into a new image
	rgba64 := image.NewRGBA64(r)
	rgba64.Set(0, 2, red)
	ans, err = Simulate(rgba64, gamut.LCT001)
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA64{}, ans)
	assert_close(t, expected_red, ans.At(0, 2), 0)
	assert_close(t, red, rgba64.At(0, 2), 0)

	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	ans, err = Simulate(empty, gamut.LCT001)
	require.NoError(t, err)
	require.Same(t, empty, ans)
}

func TestSimulateSubImage(t *testing.T) {
	img := primaries_image(4)
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	_, err := Simulate(sub, gamut.LCT001)
	require.NoError(t, err)
	require.Equal(t, red, img.NRGBAAt(0, 1))
	require.Equal(t, color.NRGBA{226, 226, 71, 0xff}, img.NRGBAAt(1, 1))
	require.Equal(t, green, img.NRGBAAt(1, 0))
	require.Equal(t, color.NRGBA{29, 31, 176, 0xff}, img.NRGBAAt(2, 2))
	require.Equal(t, blue, img.NRGBAAt(2, 3))
}

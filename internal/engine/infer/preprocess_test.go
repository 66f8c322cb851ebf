package infer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/verdant-labs/paddydoc/internal/model"
)

// encodePNG renders a solid-color test image as PNG bytes.
func encodePNG(t *testing.T, c color.Color, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := encodePNG(t, color.RGBA{R: 10, G: 200, B: 30, A: 255}, 32, 24)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 32 {
		t.Errorf("width = %d, want 32", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	if !errors.Is(err, model.ErrImageUnavailable) {
		t.Fatalf("Decode(garbage) error = %v, want ErrImageUnavailable", err)
	}
	_, err = Decode(nil)
	if !errors.Is(err, model.ErrImageUnavailable) {
		t.Fatalf("Decode(nil) error = %v, want ErrImageUnavailable", err)
	}
}

func TestCHWTensorShapeAndNormalization(t *testing.T) {
	const size = 16

	// A pure white image: every channel normalizes to (1 - mean) / std.
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.White)
		}
	}

	data := chwTensor(img, size)
	if len(data) != 3*size*size {
		t.Fatalf("tensor len = %d, want %d", len(data), 3*size*size)
	}

	plane := size * size
	for ch := 0; ch < 3; ch++ {
		want := (1 - channelMean[ch]) / channelStd[ch]
		for i := 0; i < plane; i++ {
			got := data[ch*plane+i]
			if math.Abs(float64(got-want)) > 0.02 {
				t.Fatalf("channel %d offset %d = %v, want ~%v", ch, i, got, want)
			}
		}
	}
}

func TestCHWTensorChannelOrder(t *testing.T) {
	const size = 8

	// Pure red: the R plane is high, G and B planes are low.
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	data := chwTensor(img, size)
	plane := size * size

	rWant := (1 - channelMean[0]) / channelStd[0]
	gWant := (0 - channelMean[1]) / channelStd[1]
	if math.Abs(float64(data[0]-rWant)) > 0.02 {
		t.Errorf("R plane value = %v, want ~%v", data[0], rWant)
	}
	if math.Abs(float64(data[plane]-gWant)) > 0.02 {
		t.Errorf("G plane value = %v, want ~%v", data[plane], gWant)
	}
}

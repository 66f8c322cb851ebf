package infer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/verdant-labs/paddydoc/internal/model"
)

// Per-channel normalization constants (ImageNet statistics), matching the
// preprocessing the model was trained with.
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// Decode parses an encoded JPEG or PNG leaf photo. A payload that cannot
// be decoded is a caller-input problem and maps to ErrImageUnavailable.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("infer: decode (%v): %w", err, model.ErrImageUnavailable)
	}
	return img, nil
}

// chwTensor scales the image to a size×size square and converts it to a
// flat NCHW float32 tensor ([1,3,size,size]) with per-channel mean/std
// normalization.
func chwTensor(img image.Image, size int) []float32 {
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	out := make([]float32, 3*size*size)
	plane := size * size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			off := scaled.PixOffset(x, y)
			idx := y*size + x
			r := float32(scaled.Pix[off]) / 255
			g := float32(scaled.Pix[off+1]) / 255
			b := float32(scaled.Pix[off+2]) / 255
			out[idx] = (r - channelMean[0]) / channelStd[0]
			out[plane+idx] = (g - channelMean[1]) / channelStd[1]
			out[2*plane+idx] = (b - channelMean[2]) / channelStd[2]
		}
	}
	return out
}

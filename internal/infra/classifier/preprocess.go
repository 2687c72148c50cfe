package classifier

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"campus-parking/internal/pkg/errs"

	"golang.org/x/image/draw"
)

const (
	InputSize = 180
	Channels  = 3

	// MaxSourcePixels bounds the decoded size of an upload. A compressed
	// image far below the upload limit can still declare huge dimensions.
	MaxSourcePixels = 40_000_000
)

// Tensor is an InputSize x InputSize x Channels image in row-major HWC
// order. Values are scaled to [0,1].
type Tensor [][][]float32

// Input is what a Model receives: the resized image and its tensor form.
// Backends that want encoded bytes re-encode Image.
type Input struct {
	Image  *image.RGBA
	Tensor Tensor
}

// Preprocess decodes a JPEG or PNG and resizes it to the model input size.
func Preprocess(data []byte) (Input, error) {
	if len(data) == 0 {
		return Input{}, errs.Wrap(errs.ErrInvalidImage, "empty image")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Input{}, errs.Wrap(errs.ErrInvalidImage, err.Error())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return Input{}, errs.Wrap(errs.ErrInvalidImage, fmt.Sprintf("image dimensions %dx%d not accepted", cfg.Width, cfg.Height))
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Input{}, errs.Wrap(errs.ErrInvalidImage, err.Error())
	}

	resized := Resize(src)
	return Input{Image: resized, Tensor: ToTensor(resized)}, nil
}

// Resize uses nearest-neighbour sampling, the same as the training pipeline.
func Resize(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func ToTensor(img *image.RGBA) Tensor {
	b := img.Bounds()
	t := make(Tensor, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([][]float32, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			off := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			px := img.Pix[off : off+Channels]
			row[x] = []float32{
				float32(px[0]) / 255,
				float32(px[1]) / 255,
				float32(px[2]) / 255,
			}
		}
		t[y] = row
	}
	return t
}

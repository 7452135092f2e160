// Package imagepipe normalizes uploaded product images into a bounded,
// inline-storable form. Oversized images are downscaled so their longest
// edge fits the configured bound, then everything is re-encoded as JPEG
// at a fixed quality and wrapped in a data URI. The pipeline touches no
// external state; a batch either succeeds completely or reports the
// first failure and yields nothing.
package imagepipe

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	DefaultMaxEdge = 1024
	DefaultQuality = 82

	dataURIPrefix = "data:image/jpeg;base64,"
)

// ErrDecode marks inputs that cannot be interpreted as an image
var ErrDecode = errors.New("image decode failed")

// Pipeline carries the normalization bounds. The zero value is not
// usable, construct with New.
type Pipeline struct {
	maxEdge int
	quality int
}

func New(maxEdge, quality int) *Pipeline {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Pipeline{maxEdge: maxEdge, quality: quality}
}

// Optimize converts one raw image payload into an encoded data URI.
// Images already within bounds keep their dimensions; larger ones are
// scaled down preserving aspect ratio. Never upscales.
func (p *Pipeline) Optimize(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.Wrap(ErrDecode, err.Error())
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxEdge || bounds.Dy() > p.maxEdge {
		img = imaging.Fit(img, p.maxEdge, p.maxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return "", errors.Wrap(err, "image encode failed")
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// OptimizeAll processes a batch of files concurrently and returns the
// encoded results in submission order. Any single decode failure fails
// the whole batch; partial results are discarded.
func (p *Pipeline) OptimizeAll(ctx context.Context, files [][]byte) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	out := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i := range files {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			encoded, err := p.Optimize(files[i])
			if err != nil {
				return errors.Wrapf(err, "file %d", i+1)
			}
			out[i] = encoded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode reverses a data URI produced by Optimize, returning the pixel
// data. Used by tests and the export surface.
func Decode(uri string) (image.Image, error) {
	idx := strings.Index(uri, ",")
	if !strings.HasPrefix(uri, "data:image/") || idx < 0 {
		return nil, errors.Wrap(ErrDecode, "not a data uri")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+1:])
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return img, nil
}

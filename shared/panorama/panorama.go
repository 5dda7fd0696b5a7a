// Package panorama checks that uploaded images can be shown as equirectangular 360° scenes.
package panorama

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"

	"luxhome/config"
	"luxhome/shared/constant"
	"luxhome/shared/failure"
)

const field = "panoramic_image"

type Limits struct {
	MaxSizeMB float64
	MinWidth  int
	MinHeight int
	MinAspect float64
	MaxAspect float64
}

func LimitsFromConfig(cfg *config.Config) Limits {
	p := cfg.Tour.Panorama

	return Limits{
		MaxSizeMB: p.MaxSizeMB,
		MinWidth:  p.MinWidth,
		MinHeight: p.MinHeight,
		MinAspect: p.MinAspect,
		MaxAspect: p.MaxAspect,
	}
}

// Validate reads only the image header from r. Size is checked first, so an
// oversized file fails whatever its dimensions are.
func Validate(limits Limits, size int64, r io.Reader) error {
	sizeMB := float64(size) / constant.BytesPerMegabyte
	if sizeMB > limits.MaxSizeMB {
		return failure.Validation(field, fmt.Sprintf(
			"file size should not exceed %.0fMB, current size: %.1fMB", limits.MaxSizeMB, sizeMB))
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return failure.Validation(field, "unable to read image dimensions: "+err.Error())
	}

	if cfg.Width == 0 || cfg.Height == 0 {
		return failure.Validation(field, fmt.Sprintf("invalid image dimensions %dx%d", cfg.Width, cfg.Height))
	}

	aspect := float64(cfg.Width) / float64(cfg.Height)
	if aspect < limits.MinAspect || aspect > limits.MaxAspect {
		return failure.Validation(field, fmt.Sprintf(
			"aspect ratio should be between %.1f:1 and %.1f:1 (e.g. 4096x2048), current aspect ratio: %.2f:1",
			limits.MinAspect, limits.MaxAspect, aspect))
	}

	if cfg.Width < limits.MinWidth || cfg.Height < limits.MinHeight {
		return failure.Validation(field, fmt.Sprintf(
			"image should be at least %dx%d pixels, current size: %dx%d",
			limits.MinWidth, limits.MinHeight, cfg.Width, cfg.Height))
	}

	return nil
}

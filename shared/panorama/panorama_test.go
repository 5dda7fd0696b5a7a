package panorama_test

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"luxhome/shared/failure"
	"luxhome/shared/panorama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var limits = panorama.Limits{
	MaxSizeMB: 10,
	MinWidth:  2048,
	MinHeight: 1024,
	MinAspect: 1.8,
	MaxAspect: 2.2,
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	buf := bytes.Buffer{}
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, width, height))))

	return buf.Bytes()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		size     int64
		wantErr  bool
		contains []string
	}{
		{
			name:   "equirectangular 4096x2048 passes",
			width:  4096,
			height: 2048,
		},
		{
			name:     "square image fails aspect ratio",
			width:    1024,
			height:   1024,
			wantErr:  true,
			contains: []string{"1.00:1", "1.8:1", "2.2:1"},
		},
		{
			name:     "small 2:1 image fails resolution",
			width:    1024,
			height:   512,
			wantErr:  true,
			contains: []string{"2048x1024", "1024x512"},
		},
		{
			name:     "11MB file fails regardless of dimensions",
			width:    4096,
			height:   2048,
			size:     11 * 1024 * 1024,
			wantErr:  true,
			contains: []string{"10MB", "11.0MB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodePNG(t, tt.width, tt.height)

			size := tt.size
			if size == 0 {
				size = int64(len(data))
			}

			err := panorama.Validate(limits, size, bytes.NewReader(data))

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.True(t, strings.HasPrefix(err.Error(), "panoramic_image: "))

			for _, part := range tt.contains {
				assert.Contains(t, err.Error(), part)
			}
		})
	}
}

func TestValidate_NotAnImage(t *testing.T) {
	err := panorama.Validate(limits, 12, strings.NewReader("not an image"))

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "unable to read image dimensions")
}

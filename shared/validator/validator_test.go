package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"luxhome/shared/failure"
	"luxhome/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placementStruct struct {
	RoomID string   `json:"room_id" validate:"required,uuid"`
	X      *float64 `json:"x"       validate:"required,gte=0,lte=100"`
	Color  string   `json:"color"   validate:"omitempty,hexcolor"`
	Icon   string   `json:"icon"    validate:"omitempty,oneof=door arrow stairs"`
}

type uploadStruct struct {
	Image *multipart.FileHeader `json:"image" validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=0.5"`
}

const roomID = "7f1d2a4e-5b7c-4a43-9d1e-0c2f3b4a5d6e"

func ptr[T any](v T) *T {
	return &v
}

func upload(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "living.jpg", Header: header, Size: size}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name string
		data placementStruct
		want string
	}{
		{
			name: "valid",
			data: placementStruct{RoomID: roomID, X: ptr(42.5), Color: "#d9b38a", Icon: "door"},
		},
		{
			name: "zero is a valid coordinate",
			data: placementStruct{RoomID: roomID, X: ptr(0.0)},
		},
		{
			name: "bad uuid",
			data: placementStruct{RoomID: "room-1", X: ptr(120.0)},
			want: "room_id must be a valid UUID",
		},
		{
			name: "missing coordinate",
			data: placementStruct{RoomID: roomID},
			want: "x is required",
		},
		{
			name: "coordinate out of range",
			data: placementStruct{RoomID: roomID, X: ptr(120.0)},
			want: "x must be less than or equal to 100",
		},
		{
			name: "negative coordinate",
			data: placementStruct{RoomID: roomID, X: ptr(-1.0)},
			want: "x must be greater than or equal to 0",
		},
		{
			name: "bad color",
			data: placementStruct{RoomID: roomID, X: ptr(1.0), Color: "brown"},
			want: "color must be a hex color such as #d9b38a",
		},
		{
			name: "unknown icon",
			data: placementStruct{RoomID: roomID, X: ptr(1.0), Icon: "portal"},
			want: "icon must be one of door arrow stairs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.want == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_Files(t *testing.T) {
	tests := []struct {
		name  string
		image *multipart.FileHeader
		want  string
	}{
		{name: "no file", image: nil},
		{name: "jpeg under the limit", image: upload("image/jpeg", 1024)},
		{name: "content type parameters are ignored", image: upload("image/png; charset=binary", 1024)},
		{name: "exactly the limit", image: upload("image/png", 512*1024)},
		{name: "wrong type", image: upload("application/pdf", 1024), want: "image must be one of image/png image/jpeg"},
		{name: "too large", image: upload("image/jpeg", 512*1024+1), want: "image must not exceed 0.5MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadStruct{Image: tt.image})

			if tt.want == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		data := placementStruct{}

		err := validator.Validate(strings.NewReader(`{"room_id":"`+roomID+`","x":12}`), &data)

		require.NoError(t, err)
		assert.Equal(t, 12.0, *data.X)
	})

	t.Run("malformed json", func(t *testing.T) {
		data := placementStruct{}

		err := validator.Validate(strings.NewReader(`{"room_id":`), &data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode request body")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("decoded but invalid", func(t *testing.T) {
		data := placementStruct{}

		err := validator.Validate(strings.NewReader(`{"room_id":"`+roomID+`"}`), &data)

		assert.EqualError(t, err, "x is required")
	})
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name  string
		field any
		tag   string
		want  string
	}{
		{name: "email", field: "agent@luxhome.example", tag: "required,email"},
		{name: "bad email", field: "agent", tag: "email", want: " must be a valid email address"},
		{name: "empty required", field: "", tag: "required", want: " is required"},
		{name: "uuid", field: roomID, tag: "uuid"},
		{name: "below min", field: 1, tag: "min=8", want: " must be at least 8"},
		{name: "untemplated tag falls back", field: "abc", tag: "numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			switch {
			case tt.name == "untemplated tag falls back":
				require.Error(t, err)
				assert.Contains(t, err.Error(), "numeric")
			case tt.want == "":
				assert.NoError(t, err)
			default:
				assert.EqualError(t, err, tt.want)
			}
		})
	}
}

package room

import (
	"mime/multipart"
	"net/http"

	"luxhome/shared"
	"luxhome/shared/constant"
	"luxhome/shared/failure"
)

// form reads typed values out of a multipart room form. The first conversion
// error is kept and reported by err; later reads become no-ops.
type form struct {
	values map[string][]string
	file   multipart.File
	header *multipart.FileHeader
	err    error
}

func parseForm(r *http.Request) (*form, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, failure.BadRequest(err)
	}

	f := &form{values: r.MultipartForm.Value}

	if file, header, err := r.FormFile(constant.FormPanoramicImage); err == nil {
		f.file, f.header = file, header
	}

	return f, nil
}

func (f *form) close() {
	if f.file != nil {
		_ = f.file.Close()
	}
}

func (f *form) raw(key string) (string, bool) {
	values, ok := f.values[key]
	if !ok || len(values) == 0 {
		return constant.Empty, false
	}

	return values[0], true
}

func (f *form) text(key string) string {
	value, _ := f.raw(key)

	return value
}

// optionalText distinguishes a field sent empty from one not sent at all.
func (f *form) optionalText(key string) *string {
	value, ok := f.raw(key)
	if !ok {
		return nil
	}

	return &value
}

func (f *form) integer(key string) *int {
	value := f.text(key)
	if f.err != nil || value == constant.Empty {
		return nil
	}

	n, err := shared.ConvertStringToInt(value)
	if err != nil {
		f.err = failure.Validation(key, "must be an integer")

		return nil
	}

	return &n
}

func (f *form) number(key string) *float64 {
	value := f.text(key)
	if f.err != nil || value == constant.Empty {
		return nil
	}

	n, err := shared.ConvertStringToFloat(value)
	if err != nil {
		f.err = failure.Validation(key, "must be a number")

		return nil
	}

	return &n
}

func (f *form) boolean(key string) *bool {
	return shared.ConvertStringToBool(f.text(key))
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

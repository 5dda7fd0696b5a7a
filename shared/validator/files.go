package validator

import (
	"mime/multipart"
	"slices"
	"strconv"
	"strings"

	"luxhome/shared/constant"

	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

func fileHeader(field val.FieldLevel) (multipart.FileHeader, bool) {
	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return v, true
	case *multipart.FileHeader:
		if v == nil {
			return multipart.FileHeader{}, false
		}

		return *v, true
	}

	return multipart.FileHeader{}, false
}

// mimetypes=image/png image/jpeg
func validateMimetypes(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	contentType, _, _ := strings.Cut(file.Header.Get(constant.RequestHeaderContentType), ";")

	return slices.Contains(strings.Fields(field.Param()), strings.TrimSpace(contentType))
}

// maxfilesize=10 (megabytes, fractions allowed)
func validateMaxFileSize(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil || limit <= 0 {
		return false
	}

	return float64(file.Size) <= limit*megabyte
}

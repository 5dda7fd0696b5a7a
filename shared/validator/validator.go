package validator

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"luxhome/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	// report fields under the names clients send
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	rules := map[string]val.Func{
		"mimetypes":   validateMimetypes,
		"maxfilesize": validateMaxFileSize,
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

// Validate decodes a JSON body from r into data and validates the result.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(errors.Wrap(err, "failed to decode request body")) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct checks the validate tags of data. The first violation becomes a 400 failure.
func ValidateStruct[T any](data *T) error {
	return asFailure(validate.Struct(data))
}

func ValidateVar(field any, tag string) error {
	return asFailure(validate.Var(field, tag))
}

func asFailure(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}

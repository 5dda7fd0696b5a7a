package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required":    "{field} is required",
	"email":       "{field} must be a valid email address",
	"uuid":        "{field} must be a valid UUID",
	"oneof":       "{field} must be one of {param}",
	"min":         "{field} must be at least {param}",
	"max":         "{field} must be at most {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"lt":          "{field} must be less than {param}",
	"hexcolor":    "{field} must be a hex color such as #d9b38a",
	"nefield":     "{field} must differ from {param}",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param}MB",
}

// message renders the first violation that has a template. Unknown tags fall back to the
// validator's own text.
func message(err error) string {
	var violations val.ValidationErrors
	if !errors.As(err, &violations) {
		return err.Error()
	}

	for _, v := range violations {
		tmpl, ok := templates[v.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", v.Field(), "{param}", v.Param()).Replace(tmpl)
	}

	return violations.Error()
}

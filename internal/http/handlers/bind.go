package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindForm binds a POSTed form into out and translates validator failures
// into per-field messages for inline display. A false return means the view
// should re-render with the messages; no upstream call is issued for input
// that fails local validation.
func BindForm(c *gin.Context, out any) (map[string]string, bool) {
	err := c.ShouldBind(out)

	if err == nil {
		return nil, true
	}

	fields := map[string]string{}

	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) {
		rootType := baseStructType(out)

		for _, fieldErr := range validatorErrs {
			name := formNameForField(rootType, fieldErr.Field())
			fields[name] = validationMessage(fieldErr.Tag(), fieldErr.Param())
		}

		return fields, false
	}

	// malformed body, not a field problem
	fields["_form"] = "Invalid form submission"

	return fields, false
}

func baseStructType(v any) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

func formNameForField(rootType reflect.Type, fieldName string) string {
	if rootType != nil {
		if sf, ok := rootType.FieldByName(fieldName); ok {
			tag := sf.Tag.Get("form")
			name, _, _ := strings.Cut(tag, ",")

			if name != "" && name != "-" {
				return name
			}
		}
	}

	return strings.ToLower(fieldName)
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "len":
		return "must be exactly " + param
	case "datetime":
		return "must be a date formatted " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		if param != "" {
			return "failed " + rule + " validation (" + param + ")"
		}
		return "failed " + rule + " validation"
	}
}

package services

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/studentdiary/internal/client/client"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name != "" && name != "-" {
			return name
		}
		r := []rune(f.Name)
		r[0] = unicode.ToLower(r[0])
		return string(r)
	})
	return v
}

// check validates v and reports failing fields as *client.ValidationError.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &client.ValidationError{Fields: fields}
}

package tools

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// dateparse accepts the ISO 8601 shapes the BetaHub API documents
	// for its date-range filters
	if err := v.RegisterValidation("dateparse", func(fl validator.FieldLevel) bool {
		return isParseableDate(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func isParseableDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package validation wraps go-playground/validator v10 behind a process-wide
// singleton. Reference rows, stored wine records and API requests are all
// checked through ValidateStruct.
//
// Field names in errors are taken from the json tag, so a failure on
// CountryRow.Alpha2 is reported as "alpha_2".
//
// Custom tags:
//   - currency: three upper-case ASCII letters (ISO 4217 shape)
//   - country: two upper-case ASCII letters (ISO 3166 alpha-2 shape)
//   - wine_language: one of the supported narrative languages
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// SupportedLanguages lists the narrative languages accepted by wine_language.
var SupportedLanguages = []string{"en", "ko", "ja"}

// ValidationError is a single failed field.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

func (e *ValidationError) Field() string      { return e.field }
func (e *ValidationError) Tag() string        { return e.tag }
func (e *ValidationError) Param() string      { return e.param }
func (e *ValidationError) Value() interface{} { return e.value }
func (e *ValidationError) Error() string      { return e.message }

// RequestValidationError collects every failed field of one struct.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].Error())
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the failure into the VALIDATION_ERROR API shape.
func (ve *RequestValidationError) ToAPIError() *APIError {
	if len(ve.errors) == 0 {
		return &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}
	}

	if len(ve.errors) == 1 {
		err := ve.errors[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: err.message,
			Details: map[string]interface{}{
				"field": err.field,
				"tag":   err.tag,
				"value": err.value,
			},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	messages := make([]string, 0, len(ve.errors))
	for i, err := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   err.field,
			"tag":     err.tag,
			"message": err.message,
		}
		messages = append(messages, fmt.Sprintf("%s: %s", err.field, err.message))
	}

	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("currency", isCurrencyCode)
		_ = validate.RegisterValidation("country", isAlpha2Code)
		_ = validate.RegisterValidation("wine_language", isSupportedLanguage)
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func isUpperLetters(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isCurrencyCode(fl validator.FieldLevel) bool {
	return isUpperLetters(fl.Field().String(), 3)
}

func isAlpha2Code(fl validator.FieldLevel) bool {
	return isUpperLetters(fl.Field().String(), 2)
}

func isSupportedLanguage(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	for _, lang := range SupportedLanguages {
		if v == lang {
			return true
		}
	}
	return false
}

// ValidateStruct validates s and returns nil or a *RequestValidationError.
//
//	if err := validation.ValidateStruct(&row); err != nil {
//	    return fmt.Errorf("country %q: %w", row.ID, err)
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	return toRequestError(GetValidator().Struct(s))
}

// ValidateStructExcept validates s but skips the named fields. Field names
// are Go field names relative to s, e.g. "Record.CriticReviews".
func ValidateStructExcept(s interface{}, fields ...string) *RequestValidationError {
	return toRequestError(GetValidator().StructExcept(s, fields...))
}

func toRequestError(err error) *RequestValidationError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Namespace(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// ValidateVar validates a single value against a tag string.
func ValidateVar(field interface{}, tag string) error {
	return GetValidator().Var(field, tag)
}

var errorMessageTemplates = map[string]string{
	"required":      "%s is required",
	"alpha":         "%s must contain only letters",
	"uppercase":     "%s must be upper case",
	"currency":      "%s must be a three-letter currency code",
	"country":       "%s must be a two-letter country code",
	"wine_language": "%s must be one of: en, ko, ja",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	return translateLength(fe, field, tag, param)
}

func translateLength(fe validator.FieldError, field, tag, param string) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch tag {
	case "len":
		return fmt.Sprintf("%s must be exactly %s%s", field, param, unit)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

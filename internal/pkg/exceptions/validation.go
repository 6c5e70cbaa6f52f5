package exceptions

import (
	"errors"
	"fmt"
	"posyandu-console/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabeler resolves the human label and the optional override message of a struct field.
type FieldLabeler func(structNamespace string) (label string, message string)

// FormatFieldErrors turns validator errors into a field -> message map keyed by the JSON field name.
// Only the first failing tag of each field is reported.
func FormatFieldErrors(err error, labeler FieldLabeler) map[string]string {
	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}

	for _, fieldErr := range validationErrors {
		fieldName := fieldErr.Field()
		if _, exists := fields[fieldName]; exists {
			continue
		}

		label, override := fieldName, ""
		if labeler != nil {
			label, override = labeler(fieldErr.StructNamespace())
			if label == "" {
				label = fieldName
			}
		}

		tag := fieldErr.Tag()
		if constvars.LabelledValidationTags[tag] {
			if override != "" {
				fields[fieldName] = override
				continue
			}
			fields[fieldName] = fmt.Sprintf(constvars.CustomValidationErrorMessages[tag], label)
			continue
		}

		message, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			message = fmt.Sprintf(constvars.ValidationFallbackMessage, label)
		}
		fields[fieldName] = message
	}
	return fields
}

// FormatFirstValidationError returns one message, used when a single line is enough (logs, toasts).
func FormatFirstValidationError(fields map[string]string) string {
	if len(fields) == 0 {
		return constvars.ErrClientFormInvalid
	}
	var first string
	for field := range fields {
		if first == "" || strings.Compare(field, first) < 0 {
			first = field
		}
	}
	return fields[first]
}

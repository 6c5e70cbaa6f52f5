package utils

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dates"
	"posyandu-console/internal/pkg/exceptions"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	nikLength            = 16
	phoneMinDigits       = 10
	phoneMaxDigits       = 13
	maxPlausibleAgeYears = 150
)

var (
	validate *validator.Validate

	rePhonePrefix = regexp.MustCompile(`^(\+62|62|0)`)
	reEmail       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// now is swapped in tests.
	now = time.Now
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(nullFloatValue, models.NullFloat{})
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("nik_length", validateNIKLength)
	validate.RegisterValidation("nik_date", validateNIKDate)
	validate.RegisterValidation("phone_prefix", validatePhonePrefix)
	validate.RegisterValidation("phone_length", validatePhoneLength)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("not_future_date", validateNotFutureDate)
	validate.RegisterValidation("plausible_birthdate", validatePlausibleBirthDate)
	validate.RegisterValidation("email_format", validateEmailFormat)
	validate.RegisterValidation("education_level", oneOf(constvars.EducationLevels))
	validate.RegisterValidation("vaccine_type", oneOf(constvars.VaccineTypes))
	validate.RegisterValidation("visit_type", oneOf(constvars.VisitTypes))
	validate.RegisterValidation("visit_status", oneOf(constvars.VisitStatuses))
	validate.RegisterValidation("vaccination_status", oneOf(constvars.VaccinationStatuses))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateForm validates s and returns the per-field messages, or nil when the form is valid.
// Labels and message overrides come from the `label` and `message` struct tags.
func ValidateForm(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fields := exceptions.FormatFieldErrors(err, structTagLabeler(reflect.TypeOf(s)))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// nullFloatValue lets `required` treat an absent or zero measurement as missing.
func nullFloatValue(field reflect.Value) interface{} {
	if value, ok := field.Interface().(models.NullFloat); ok && value.Valid {
		return value.Float64
	}
	return nil
}

func structTagLabeler(root reflect.Type) exceptions.FieldLabeler {
	return func(namespace string) (string, string) {
		field, ok := fieldByNamespace(root, namespace)
		if !ok {
			return "", ""
		}
		return field.Tag.Get("label"), field.Tag.Get("message")
	}
}

// fieldByNamespace walks "Form.Inner.Field" down from root.
func fieldByNamespace(root reflect.Type, namespace string) (reflect.StructField, bool) {
	segments := strings.Split(namespace, ".")
	if len(segments) < 2 {
		return reflect.StructField{}, false
	}

	current := root
	var field reflect.StructField
	for _, segment := range segments[1:] {
		for current.Kind() == reflect.Ptr || current.Kind() == reflect.Slice {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		if i := strings.IndexByte(segment, '['); i >= 0 {
			segment = segment[:i]
		}
		found, ok := current.FieldByName(segment)
		if !ok {
			return reflect.StructField{}, false
		}
		field = found
		current = found.Type
	}
	return field, true
}

func validateNIKLength(fl validator.FieldLevel) bool {
	return len(DigitsOnly(fl.Field().String())) == nikLength
}

// validateNIKDate checks the DDMM prefix only. No checksum exists for NIK.
func validateNIKDate(fl validator.FieldLevel) bool {
	digits := DigitsOnly(fl.Field().String())
	if len(digits) < 4 {
		return false
	}
	day, _ := strconv.Atoi(digits[0:2])
	month, _ := strconv.Atoi(digits[2:4])
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}

func validatePhonePrefix(fl validator.FieldLevel) bool {
	return rePhonePrefix.MatchString(CleanPhone(fl.Field().String()))
}

func validatePhoneLength(fl validator.FieldLevel) bool {
	digits := len(DigitsOnly(fl.Field().String()))
	return digits >= phoneMinDigits && digits <= phoneMaxDigits
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := dates.ParseLocalDate(fl.Field().String())
	return err == nil
}

func validateNotFutureDate(fl validator.FieldLevel) bool {
	date, err := dates.ParseLocalDate(fl.Field().String())
	if err != nil {
		return true
	}
	return !date.After(now())
}

func validatePlausibleBirthDate(fl validator.FieldLevel) bool {
	date, err := dates.ParseLocalDate(fl.Field().String())
	if err != nil {
		return true
	}
	age := now().Year() - date.Year()
	return age >= 0 && age <= maxPlausibleAgeYears
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return reEmail.MatchString(fl.Field().String())
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, candidate := range allowed {
			if value == candidate {
				return true
			}
		}
		return false
	}
}

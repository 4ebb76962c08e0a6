package core

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	seasonTag  = "season"
	seasonText = "must be one of Fall, Spring or Summer"

	courseCodeTag  = "coursecode"
	courseCodeText = "must be a course code such as 'CAS CS 112'"

	requiredTag  = "required"
	requiredText = "this field is required"
)

var seasons = []string{"Fall", "Spring", "Summer"}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(seasonTag, seasonValidation)
	RegisterCustomTranslation(validate, translator, seasonTag, seasonText)

	_ = validate.RegisterValidation(courseCodeTag, courseCodeValidation)
	RegisterCustomTranslation(validate, translator, courseCodeTag, courseCodeText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// seasonValidation only allows known academic seasons.
func seasonValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, s := range seasons {
		if strings.EqualFold(val, s) {
			return true
		}
	}
	return false
}

// courseCodeValidation expects at least a subject and a catalog number.
func courseCodeValidation(fl validator.FieldLevel) bool {
	return len(strings.Fields(fl.Field().String())) >= 2
}

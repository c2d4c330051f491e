package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	ptbr_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

const (
	LocaleEN   = "en"
	LocalePTBR = "pt_BR"
)

var (
	// custom validation tags & texts
	digitsTag   = "digits"
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
	digitsText  = map[string]string{
		LocaleEN:   "only digits are allowed",
		LocalePTBR: "somente dígitos são permitidos",
	}

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = map[string]string{
		LocaleEN:   "this field is required",
		LocalePTBR: "este campo é obrigatório",
	}
)

// NewTranslator returns the translator for `locale`, falling back to pt_BR.
func NewTranslator(locale string) ut.Translator {
	_ptBR := pt_BR.New()
	uni := ut.New(_ptBR, _ptBR, en.New())
	translator, found := uni.GetTranslator(locale)
	if !found {
		return uni.GetFallback()
	}
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	locale := translator.Locale()
	if locale == LocaleEN {
		_ = en_translations.RegisterDefaultTranslations(validate, translator)
	} else {
		locale = LocalePTBR
		_ = ptbr_translations.RegisterDefaultTranslations(validate, translator)
	}

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(digitsTag, digitsValidation)
	RegisterCustomTranslation(validate, translator, digitsTag, digitsText[locale])

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText[locale], true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText[locale], true)
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

// digitsValidation only allows ASCII digits.
func digitsValidation(fl validator.FieldLevel) bool {
	return digitsRegex.MatchString(fl.Field().String())
}

package attendance

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/chamada/core"
)

var (
	statusTag  = "attendance_status"
	statusText = map[string]string{
		core.LocaleEN:   "must be one of: present, absent, justified",
		core.LocalePTBR: "deve ser um de: present, absent, justified",
	}
)

// InitValidators registers the attendance validators and texts.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	text, ok := statusText[translator.Locale()]
	if !ok {
		text = statusText[core.LocalePTBR]
	}
	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, text)
}

func statusValidation(fl validator.FieldLevel) bool {
	_, err := ParseStatus(fl.Field().String())
	return err == nil
}

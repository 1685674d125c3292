package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Partida codes are dot-separated numeric segments, e.g. "500" or "03.01.02".
var partidaCodePattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// registerCustomValidators adds the partida_code rule to gin's binding engine
// so DTO tags can reference it.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("partida_code", func(fl validator.FieldLevel) bool {
			return partidaCodePattern.MatchString(fl.Field().String())
		})
	}
}

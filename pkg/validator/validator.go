package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate instancia compartida (el validador es seguro para uso concurrente).
var validate = validator.New()

// Struct valida un DTO según sus tags `validate`. Devuelve un mensaje legible
// con el primer grupo de campos inválidos, o nil si todo es válido.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldName(fe), message(fe)))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace incluye el tipo; nos quedamos solo con el campo
	parts := strings.Split(fe.StructNamespace(), ".")
	return parts[len(parts)-1]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un UUID válido"
	case "min":
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de [%s]", fe.Param())
	default:
		return "es inválido"
	}
}

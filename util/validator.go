package util

import "github.com/go-playground/validator/v10"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("votevalue", validateVoteValue)
	validate.RegisterValidation("poemtext", validatePoemText)
}

func validateVoteValue(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v == -1 || v == 1
}

func validatePoemText(fl validator.FieldLevel) bool {
	return ValidPoemText(fl.Field().String())
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

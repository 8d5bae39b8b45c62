package utils

import (
	"regexp"

	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("collection_type", validateCollectionType)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := models.ParseUserRole(fl.Field().String())
	return err == nil
}

func validateCollectionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.CollectionHome) || value == string(models.CollectionLab)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch models.PaymentMethod(value) {
	case models.PaymentUPI, models.PaymentCard, models.PaymentCash:
		return true
	}
	return false
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumber)
	return re.MatchString(phoneNumber)
}

package utils

import (
	"testing"

	"labtrack-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_Login(t *testing.T) {
	t.Run("Valid First Step", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Phone: "+919876543210", Role: "patient"})
		assert.NoError(t, err)
	})

	t.Run("Valid Second Step", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Phone: "+919876543210", Role: "lab_tech", OTP: "123456"})
		assert.NoError(t, err)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Phone: "+919876543210", Role: "superuser"})
		assert.Error(t, err)
	})

	t.Run("Malformed Phone", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Phone: "12345", Role: "patient"})
		assert.Error(t, err)
	})

	t.Run("Short OTP", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Phone: "+919876543210", Role: "patient", OTP: "123"})
		assert.Error(t, err)
	})
}

func TestValidateStruct_CreateBooking(t *testing.T) {
	t.Run("Valid With Defaults Omitted", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateBooking{
			TestName:    "Lipid Profile",
			PatientName: "John Doe",
		})
		assert.NoError(t, err)
	})

	t.Run("Valid Lab Visit With Card", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateBooking{
			TestName:      "Thyroid Profile",
			PatientName:   "John Doe",
			Type:          "LAB",
			PaymentMethod: "CARD",
		})
		assert.NoError(t, err)
	})

	t.Run("Unknown Collection Type", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateBooking{
			TestName:    "Lipid Profile",
			PatientName: "John Doe",
			Type:        "COURIER",
		})
		assert.Error(t, err)
	})

	t.Run("Unknown Payment Method", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateBooking{
			TestName:      "Lipid Profile",
			PatientName:   "John Doe",
			PaymentMethod: "CRYPTO",
		})
		assert.Error(t, err)
	})

	t.Run("Missing Test Name", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateBooking{PatientName: "John Doe"})
		assert.Error(t, err)
	})
}

func TestValidateStruct_TransitionBooking(t *testing.T) {
	t.Run("Valid Status Only", func(t *testing.T) {
		err := ValidateStruct(&requests.TransitionBooking{TargetStatus: "SAMPLE_COLLECTED"})
		assert.NoError(t, err)
	})

	t.Run("Missing Target Status", func(t *testing.T) {
		err := ValidateStruct(&requests.TransitionBooking{CollectorName: "Ravi Kumar"})
		assert.Error(t, err)
	})
}

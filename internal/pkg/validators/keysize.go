package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size in bits based on the algorithm type (AES or HMAC-SHA256).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "AES":
		return keySize == 128 || keySize == 192 || keySize == 256
	case "HMAC-SHA256":
		// Any whole number of bytes; keys longer than the 512-bit block are hashed first.
		return keySize >= 8 && keySize <= 4096 && keySize%8 == 0
	default:
		return false
	}
}

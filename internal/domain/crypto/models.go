package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vchlum/hue-lights-sub001/internal/pkg/validators"
)

// KeySpec describes a generated symmetric key
type KeySpec struct {
	ID              string    `mapstructure:"id" validate:"required,uuid4"`
	Algorithm       string    `mapstructure:"algorithm" validate:"required,oneof=AES HMAC-SHA256"`
	Type            string    `mapstructure:"type" validate:"required,eq=symmetric"`
	KeySize         uint32    `mapstructure:"key_size" validate:"required,keySizeValidation"`
	DateTimeCreated time.Time `mapstructure:"date_time_created" validate:"required"`
}

// NewKeySpec creates a KeySpec with a fresh ID for a key of keySize bits
func NewKeySpec(algorithm string, keySize uint32) *KeySpec {
	return &KeySpec{
		ID:              uuid.New().String(),
		Algorithm:       algorithm,
		Type:            KeyTypeSymmetric,
		KeySize:         keySize,
		DateTimeCreated: time.Now(),
	}
}

// KeyBytes returns the key size in bytes
func (k *KeySpec) KeyBytes() int {
	return int(k.KeySize / 8)
}

// Validate for validating KeySpec struct
func (k *KeySpec) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

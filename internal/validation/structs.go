package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Custom struct tags backed by the predicates in this package.
const (
	TagFilled   = "filled"
	TagEmail    = "resume_email"
	TagPhone    = "resume_phone"
	TagURL      = "resume_url"
	TagPassword = "resume_password"
)

// Messages maps "<StructField>.<tag>" to the message reported when that tag
// fails on that field.
type Messages map[string]string

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func structs() *validator.Validate {
	structValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, TagFilled, func(fl validator.FieldLevel) bool {
			return !IsEmpty(fl.Field().String())
		})
		mustRegister(v, TagEmail, func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
		mustRegister(v, TagPhone, func(fl validator.FieldLevel) bool {
			return IsValidPhone(fl.Field().String())
		})
		mustRegister(v, TagURL, func(fl validator.FieldLevel) bool {
			return IsValidURL(fl.Field().String())
		})
		mustRegister(v, TagPassword, func(fl validator.FieldLevel) bool {
			return ValidatePassword(fl.Field().String()).IsValid
		})
		structValidator = v
	})
	return structValidator
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

// Check validates v against its `validate` struct tags. Each failing field
// contributes one FieldError keyed by its Go field name, in declaration
// order. A nil *FieldErrors means v is valid. The error return is reserved
// for values that cannot be validated at all, such as non-structs.
func Check(v any, messages Messages) (*FieldErrors, error) {
	err := structs().Struct(v)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate %T: %w", v, err)
	}

	out := &FieldErrors{}
	for _, fe := range verrs {
		out.Add(fe.StructField(), messages.lookup(fe))
	}
	return out, nil
}

func (m Messages) lookup(fe validator.FieldError) string {
	if msg, ok := m[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Tag() == TagPassword {
		if s, ok := fe.Value().(string); ok {
			return ValidatePassword(s).Message
		}
	}
	return fmt.Sprintf("%s failed the %q check", fe.StructField(), fe.Tag())
}

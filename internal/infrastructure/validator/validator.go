package validator

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// nicknamePattern is the full nickname shape: 3–20 chars, letters, digits,
// underscore. Uniqueness is the resolver's job, not the validator's.
var nicknamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase
// IValidator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// ValidateNickname checks the nickname shape locally, with no directory
// call.
func (av *AppValidator) ValidateNickname(nickname string) error {
	if !nicknamePattern.MatchString(nickname) {
		return fmt.Errorf("nickname must be 3-20 characters of letters, digits, or underscore")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	return av.validate.Var(password, "required,min=6")
}

// RegisterCustomValidators registers the nickname rule with the Gin
// binding engine so request DTOs can carry a `nickname` tag.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("nickname", nicknameFL)
	}
}

func nicknameFL(fl validator.FieldLevel) bool {
	return nicknamePattern.MatchString(fl.Field().String())
}

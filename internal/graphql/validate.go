package graphql

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldMessages maps a failed struct field to its fixed, client-facing
// message, keyed by the validator's struct namespace.
var fieldMessages = map[string]string{
	"RegisterUserInput.Username":         "Username must be at least 3 characters",
	"RegisterUserInput.Email":            "Email is not valid",
	"RegisterUserInput.Password":         "Password must be at least 8 characters",
	"LoginUserInput.Email":               "Email is not valid",
	"LoginUserInput.Password":            "Password must be at least 8 characters",
	"CreateNFTInput.Title":               "Title is required",
	"CreateNFTInput.ShortDescription":    "Short description is required",
	"CreateNFTInput.LongDescription":     "Long description is required",
	"CreateNFTInput.Category":            "Category is required",
	"CreateNFTInput.ImageURI":            "Image must be a valid URL",
	"CreateNFTInput.SourceURI":           "Source must be a valid URL",
	"UpdateNFTInput.ImageURI":            "Image must be a valid URL",
	"UpdateNFTInput.SourceURI":           "Source must be a valid URL",
	"CreateProfileInput.Bio":             "Bio must be between 0 and 255 characters",
	"CreateProfileInput.ProfileImageURI": "Profile image must be a valid URL",
	"UpdateProfileInput.Bio":             "Bio must be between 0 and 255 characters",
	"UpdateProfileInput.ProfileImageURI": "Profile image must be a valid URL",
}

// validateInput checks an input struct and converts the first violation into
// a VALIDATION_FAILED error with its fixed message.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
			return &gqlError{code: codeValidationFailed, err: errors.New(msg)}
		}
		return &gqlError{
			code: codeValidationFailed,
			err:  fmt.Errorf("%s failed %s validation", fe.Field(), fe.Tag()),
		}
	}

	return err
}

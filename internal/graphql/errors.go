package graphql

import (
	"errors"

	"github.com/envisioned/nft-marketplace/internal/middlewares"
	"github.com/envisioned/nft-marketplace/internal/services"
)

// Error codes exposed to clients via extensions.code.
const (
	codeUnauthenticated   = "UNAUTHENTICATED"
	codeNotAuthorized     = "NOT_AUTHORIZED"
	codeNotFound          = "NOT_FOUND"
	codeConflict          = "CONFLICT"
	codeInvalidCredential = "INVALID_CREDENTIAL"
	codeValidationFailed  = "VALIDATION_FAILED"
	codeSameValue         = "SAME_VALUE"
	codeInternal          = "INTERNAL_SERVER_ERROR"
)

// gqlError pairs a service error with a machine-readable code. The
// graphql-go executor picks the code up through the Extensions hook.
type gqlError struct {
	code string
	err  error
}

func (e *gqlError) Error() string { return e.err.Error() }

func (e *gqlError) Unwrap() error { return e.err }

func (e *gqlError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// wrapError classifies a failure into the error taxonomy. Unknown errors are
// reported as internal and keep a generic message; sentinel messages pass
// through verbatim.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var ge *gqlError
	if errors.As(err, &ge) {
		return ge
	}

	switch {
	case errors.Is(err, middlewares.ErrNotAuthenticated):
		return &gqlError{code: codeUnauthenticated, err: err}
	case errors.Is(err, services.ErrNFTEditForbidden),
		errors.Is(err, services.ErrNFTDeleteForbidden):
		return &gqlError{code: codeNotAuthorized, err: err}
	case errors.Is(err, services.ErrNFTDoesNotExist),
		errors.Is(err, services.ErrProfileDoesNotExist),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrUserDoesNotExist):
		return &gqlError{code: codeNotFound, err: err}
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrProfileAlreadyExists),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		return &gqlError{code: codeConflict, err: err}
	case errors.Is(err, services.ErrInvalidPassword),
		errors.Is(err, services.ErrInvalidOldPassword):
		return &gqlError{code: codeInvalidCredential, err: err}
	case errors.Is(err, services.ErrSamePassword):
		return &gqlError{code: codeSameValue, err: err}
	default:
		return &gqlError{code: codeInternal, err: errors.New("Internal server error")}
	}
}

package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT / tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrTokenIsNotRefresh    = fmt.Errorf("o token não é um refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("o token não é um access token")

	// Autenticação
	ErrEmptyAuthHeader    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciais inválidas")
	ErrUnauthorized       = fmt.Errorf("não autenticado")
	ErrForbidden          = fmt.Errorf("acesso negado")

	// Contexto
	ErrSessionNotFoundInContext = fmt.Errorf("sessão não encontrada no contexto da requisição")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// HttpError carries the HTTP status a failure should surface with,
// the user-facing message and the underlying cause for logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, nil, nil)
}

// NewConflictError is used for blocked deletes: the store refused the
// operation because other records still reference the target.
func NewConflictError(message string) *HttpError {
	return NewHttpError(http.StatusConflict, message, nil, nil)
}

// CodeFor maps the sentinel errors to HTTP statuses; anything unknown
// stays a 500 so unexpected failures are never silently downgraded.
func CodeFor(err error) int {
	switch err {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrInvalidCredentials, ErrUnauthorized, ErrEmptyAuthHeader, ErrInvalidAuthHeader,
		ErrInvalidToken, ErrTokenExpired, ErrTokenIsNotRefresh, ErrTokenIsNotAccess:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotFound       = errors.New("Resource not found")
	ErrInvalidID      = errors.New("El id debe ser un número entero")

	ErrRoleNameRequired  = errors.New("El nombre del rol es requerido")
	ErrUserNameRequired  = errors.New("El nombre del usuario es requerido")
	ErrUserEmailRequired = errors.New("El email del usuario es requerido")
	ErrUserRutRequired   = errors.New("El rut del usuario es requerido")

	ErrEmailAlreadyUsed      = errors.New("Email has already been used")
	ErrRutAlreadyUsed        = errors.New("RUT has already been used")
	ErrRoleReferenceNotFound = errors.New("Referenced role does not exist")
	ErrRoleInUse             = errors.New("Role is still assigned to one or more users")
)

var errorMap = map[error]int{
	ErrInternalServer:        ErrStatusInternalServer,
	ErrClient:                ErrStatusClient,
	ErrNotFound:              ErrStatusNotFound,
	ErrInvalidID:             ErrStatusClient,
	ErrRoleNameRequired:      ErrStatusClient,
	ErrUserNameRequired:      ErrStatusClient,
	ErrUserEmailRequired:     ErrStatusClient,
	ErrUserRutRequired:       ErrStatusClient,
	ErrEmailAlreadyUsed:      ErrStatusClient,
	ErrRutAlreadyUsed:        ErrStatusClient,
	ErrRoleReferenceNotFound: ErrStatusClient,
	ErrRoleInUse:             ErrStatusClient,
}

// GetErrorStatusCode resolves the HTTP status for err, unwrapping as needed.
// Unknown errors come from the persistence layer and are reported as bad requests.
func GetErrorStatusCode(err error) int {
	for known, status := range errorMap {
		if errors.Is(err, known) {
			return status
		}
	}
	return ErrStatusClient
}

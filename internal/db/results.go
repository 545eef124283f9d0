package db

import "github.com/mathmaster/backend/internal/models"

type AuthStatus string

const (
	AuthOK AuthStatus = "ok"
	// AuthNewUser means no account matched the identifier; the caller should
	// route to registration with the echoed identifier prefilled.
	AuthNewUser AuthStatus = "new_user"
	AuthFailed  AuthStatus = "failed"
)

// AuthResult is the outcome of login and registration.
type AuthResult struct {
	Success    bool
	Status     AuthStatus
	User       *models.User
	Identifier string
	Message    string
}

// OpResult is the outcome of a single mutation.
type OpResult struct {
	Success bool
	Message string
}

func opOK() OpResult { return OpResult{Success: true} }

func opFail(msg string) OpResult { return OpResult{Success: false, Message: msg} }

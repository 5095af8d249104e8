package service

import "errors"

// Caller is the capability handed in by the identity collaborator. It is an
// explicit parameter on every privileged operation; the services never read
// ambient state to decide who is asking.
type Caller struct {
	// Account is the caller's own account number, used as the transfer source.
	Account string
	// Operator grants deposit and account-creation rights. The services
	// trust the flag as given.
	Operator bool
}

var ErrNotPermitted = errors.New("operation requires operator privileges")

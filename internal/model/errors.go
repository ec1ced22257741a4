package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned on registration with an already used email.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrInvalidCredentials is returned on login with a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers every token verification failure: bad signature,
	// malformed structure, expiry, missing claims. Callers must not be able to
	// tell these apart.
	ErrInvalidToken = errors.New("invalid token")
)

// Package repository persists the service's relational state: the
// append-only delivery log plus the users and refresh tokens backing the
// admin API. Sentinel errors declared here let handlers map storage
// failures onto specific HTTP responses.
package repository

import "errors"

// ErrEmailExists is returned when registering a user whose email is already
// taken. Handlers translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

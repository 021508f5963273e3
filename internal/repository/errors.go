// Package repository implements the data access layer on top of
// database/sql. Sentinel errors defined here let handlers translate
// store-level failures into the right HTTP status without inspecting
// driver error strings themselves.
package repository

import "errors"

// ErrDuplicateUser is returned when an insert collides with the unique
// username or email constraint. Handlers translate this into a 400
// "User already exists" response.
var ErrDuplicateUser = errors.New("user already exists")

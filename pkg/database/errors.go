package database

import "errors"

// ErrNotReady indicates the database connection could not be verified.
var ErrNotReady = errors.New("database not ready")

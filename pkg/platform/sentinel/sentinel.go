package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The backend client and the
// session stores return these (optionally wrapped) so the HTTP layer can
// translate them into response codes.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: the backend has no such resource (HTTP 404)
// - ErrConflict: the backend rejected the write as conflicting (HTTP 409)
// - ErrUnauthorized: the backend rejected our credentials (HTTP 401/403)
// - ErrInvalidState: resource in wrong state for requested operation
// - ErrUnavailable: backend unreachable, timed out or answering 5xx
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExpired      = errors.New("expired")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)

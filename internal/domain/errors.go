package domain

import "errors"

var (
	// ErrInvalidArgument is returned when a caller-supplied code or field is malformed.
	// Always caller-correctable; writes carrying it are rejected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a code or record does not resolve
	ErrNotFound = errors.New("not found")

	// ErrKeyUnavailable is returned when decryption references a key version that is missing or retired
	ErrKeyUnavailable = errors.New("encryption key unavailable")

	// ErrNoActiveKey is returned when encryption is attempted without an active key configured.
	// The triggering write must be rejected entirely; PII is never stored unencrypted.
	ErrNoActiveKey = errors.New("no active encryption key")

	// ErrConcurrencyConflict is returned when sequence allocation loses a serialization race
	// after internal retries are exhausted
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrScopeViolation is returned when a record lies outside the principal's jurisdiction.
	// Surfaced to callers as not-found so out-of-scope existence never leaks.
	ErrScopeViolation = errors.New("record outside principal scope")

	// ErrHeadNotMember is returned when a household head is not an active member of that household
	ErrHeadNotMember = errors.New("household head is not an active member")

	// ErrActiveMembershipExists is returned when a resident already holds an active household membership
	ErrActiveMembershipExists = errors.New("resident already has an active membership")
)

package gsol

import "errors"

var (
	// ErrDerivationExhausted means no bump produced an off-curve address.
	ErrDerivationExhausted = errors.New("program address derivation exhausted")
	// ErrLookupFailed covers RPC errors, missing accounts and unreadable account data.
	ErrLookupFailed = errors.New("account lookup failed")
	// ErrNotDelegated is returned for stake accounts without an active delegation.
	ErrNotDelegated = errors.New("stake account is not delegated")
	// ErrSerialization means the instruction or transaction could not be assembled.
	ErrSerialization = errors.New("instruction serialization failed")
	// ErrMissingSigner is returned when a signing address is required but zero.
	ErrMissingSigner = errors.New("missing signer")
	ErrInvalidConfig = errors.New("invalid config")
)

package service

import "errors"

// Sentinel errors the HTTP error handler maps to status codes and inline
// Korean messages. None of them terminate the session.
var (
	// ErrInvalidLogin reports a login with an empty name or a code that is
	// not exactly four digits.
	ErrInvalidLogin = errors.New("invalid agent name or code")

	// ErrNotLoggedIn reports a request without a live session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrWrongState reports an action that the current page state does not
	// allow (e.g. asking a follow-up before intake).
	ErrWrongState = errors.New("action not allowed in current state")

	// ErrNoScript reports a draft request before any script was generated.
	ErrNoScript = errors.New("no script context")

	// ErrNoTurns reports a save with an empty conversation.
	ErrNoTurns = errors.New("no conversation to save")

	// ErrProviderUnavailable reports a completion failure on an operation
	// with no fallback-text contract (random customer generation).
	ErrProviderUnavailable = errors.New("completion provider unavailable")
)

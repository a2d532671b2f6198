package store

import "errors"

var (
	// ErrIssueNotFound is returned in strict mode when a command targets an
	// issue id absent from the collection.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrPostNotFound is returned in strict mode when a like toggle targets a
	// missing community post.
	ErrPostNotFound = errors.New("post not found")
	// ErrNoActiveUser is returned in strict mode when a command needs a
	// signed-in user and there is none.
	ErrNoActiveUser = errors.New("no active user")
	// ErrUnknownCommand is returned in strict mode for command kinds outside
	// the closed set.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidPayload wraps validation failures of command payloads in
	// strict mode.
	ErrInvalidPayload = errors.New("invalid payload")
)

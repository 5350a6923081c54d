package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError is returned when a record addressed by id does not exist.
type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewResourceNotFoundError(resource, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource, ID: id}
}

func NewGameNotFoundError(id int64) *ResourceNotFoundError {
	return NewResourceNotFoundError("game", fmt.Sprintf("%d", id))
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// InvalidGameError wraps the validation failures of a game record.
type InvalidGameError struct {
	err error
}

func (e *InvalidGameError) Error() string {
	return fmt.Sprintf("invalid game: %v", e.err)
}

func (e *InvalidGameError) Unwrap() error {
	return e.err
}

func NewInvalidGameError(err error) *InvalidGameError {
	return &InvalidGameError{err: err}
}

func IsInvalidGameError(err error) bool {
	var e *InvalidGameError
	return errors.As(err, &e)
}

// MetadataUnavailableError is returned when the remote metadata service is
// not configured or refused our credentials.
type MetadataUnavailableError struct {
	Reason string
}

func (e *MetadataUnavailableError) Error() string {
	return fmt.Sprintf("metadata service unavailable: %s", e.Reason)
}

func NewMetadataUnavailableError(reason string) *MetadataUnavailableError {
	return &MetadataUnavailableError{Reason: reason}
}

func IsMetadataUnavailableError(err error) bool {
	var e *MetadataUnavailableError
	return errors.As(err, &e)
}

// StaleSearchError marks a search result that was superseded by a newer
// request before it completed. Callers drop it silently.
type StaleSearchError struct {
	Term  string
	Token uint64
}

func (e *StaleSearchError) Error() string {
	return fmt.Sprintf("search %q (request %d) superseded by a newer request", e.Term, e.Token)
}

func NewStaleSearchError(term string, token uint64) *StaleSearchError {
	return &StaleSearchError{Term: term, Token: token}
}

func IsStaleSearchError(err error) bool {
	var e *StaleSearchError
	return errors.As(err, &e)
}

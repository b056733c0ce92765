package nba

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when a player search is issued without a query
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrNoRows is wrapped in a ParseError when the upstream returned no data rows
	ErrNoRows = errors.New("no rows in upstream response")
)

// maxErrorMessageBody caps how much upstream body ends up in error strings
const maxErrorMessageBody = 200

// UpstreamError is returned when the stats service can't be reached or
// answers with a non-success status.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	body := e.Body
	if len(body) > maxErrorMessageBody {
		body = body[:maxErrorMessageBody]
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, string(body))
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError is returned when an upstream body doesn't have the expected shape.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

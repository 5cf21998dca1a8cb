package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies every error the gateway surfaces. Handlers map kinds to
// HTTP statuses in one place instead of string-matching error messages.
type Kind string

const (
	KindConfig       Kind = "config"
	KindValidation   Kind = "validation"
	KindPrecondition Kind = "precondition"
	KindNetwork      Kind = "network"
	KindUpstream     Kind = "upstream"
	KindDecode       Kind = "decode"
	KindNotFound     Kind = "not_found"
	KindPartial      Kind = "partial"
)

// Error is the gateway's single error currency
type Error struct {
	Kind    Kind
	Status  int    // upstream HTTP status for KindUpstream, 0 otherwise
	Message string
	Fields  map[string]string // field -> message for KindValidation
	Failed  map[string]string // id -> reason for KindPartial
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an error of the given kind wrapping a cause
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Validation creates a validation error carrying a field-level error map
func Validation(fields map[string]string) *Error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed: " + strings.Join(keys, ", "),
		Fields:  fields,
	}
}

// Upstream creates an error from a non-2xx upstream response
func Upstream(status int, body string) *Error {
	kind := KindUpstream
	if status == http.StatusNotFound {
		kind = KindNotFound
	}
	return &Error{Kind: kind, Status: status, Message: body}
}

// Partial creates a batch partial-failure summary. failed maps each id that
// could not be processed to the reason.
func Partial(op string, failed map[string]string) *Error {
	ids := make([]string, 0, len(failed))
	for id := range failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &Error{
		Kind:    KindPartial,
		Message: fmt.Sprintf("%s failed for %d of batch: %s", op, len(failed), strings.Join(ids, ", ")),
		Failed:  failed,
	}
}

// KindOf returns the kind of err, or KindUpstream for foreign errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// HTTPStatus maps an error to the status the admin API should answer with
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindPrecondition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPartial:
		return http.StatusMultiStatus
	case KindNetwork, KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsError extracts an *Error from err when present
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

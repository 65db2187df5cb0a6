// Package errs holds the engine's error taxonomy. Provider and company
// failures are recovered locally; validation and configuration errors are
// the only ones a caller ever sees as a returned error.
package errs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
)

type ProviderErrorKind string

const (
	KindTimeout     ProviderErrorKind = "timeout"
	KindCanceled    ProviderErrorKind = "canceled"
	KindRateLimited ProviderErrorKind = "rate_limited"
	KindHTTP        ProviderErrorKind = "http"
	KindDecode      ProviderErrorKind = "decode"
	KindNetwork     ProviderErrorKind = "network"
)

// ProviderError reports a failed job-board source. It never aborts a run.
type ProviderError struct {
	Board  string
	Kind   ProviderErrorKind
	Status int
	Err    error
	Stack  []byte
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider %s: %s (status %d): %v", e.Board, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Board, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) StackTrace() []byte { return e.Stack }

// StatusError is returned by HTTP helpers for non-2xx responses.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// DecodeError marks a payload that could not be parsed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// NewProviderError classifies err for board.
func NewProviderError(board string, err error) *ProviderError {
	pe := &ProviderError{Board: board, Err: err, Kind: KindNetwork}

	var se *StatusError
	var de *DecodeError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		pe.Kind = KindTimeout
	case errors.Is(err, context.Canceled):
		pe.Kind = KindCanceled
	case errors.As(err, &se):
		pe.Status = se.Status
		pe.Kind = KindHTTP
		if se.Status == 429 {
			pe.Kind = KindRateLimited
		}
	case errors.As(err, &de):
		pe.Kind = KindDecode
	}

	pe.Stack = stackOf(err)
	return pe
}

// CompanyResolutionError means every company-data provider failed and a
// neutral profile was used instead.
type CompanyResolutionError struct {
	Company string
	Errs    []error
	Stack   []byte
}

func (e *CompanyResolutionError) Error() string {
	if len(e.Errs) == 0 {
		return fmt.Sprintf("resolve company %q: no providers available", e.Company)
	}
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("resolve company %q: %s", e.Company, strings.Join(msgs, "; "))
}

func (e *CompanyResolutionError) Unwrap() []error { return e.Errs }

func (e *CompanyResolutionError) StackTrace() []byte { return e.Stack }

func NewCompanyResolutionError(company string, errs []error) *CompanyResolutionError {
	return &CompanyResolutionError{
		Company: company,
		Errs:    errs,
		Stack:   goerrors.New("company resolution failed").Stack(),
	}
}

// ValidationError rejects malformed search criteria before any I/O.
type ValidationError struct {
	Problems []string
	Stack    []byte
}

func (e *ValidationError) Error() string {
	return "invalid search criteria:\n- " + strings.Join(e.Problems, "\n- ")
}

func (e *ValidationError) StackTrace() []byte { return e.Stack }

func NewValidationError(problems []string) *ValidationError {
	return &ValidationError{
		Problems: problems,
		Stack:    goerrors.New("validation failed").Stack(),
	}
}

// ConfigurationError is fatal at startup.
type ConfigurationError struct {
	Problems []string
	Stack    []byte
}

func (e *ConfigurationError) Error() string {
	return "config validation failed:\n- " + strings.Join(e.Problems, "\n- ")
}

func (e *ConfigurationError) StackTrace() []byte { return e.Stack }

func NewConfigurationError(problems ...string) *ConfigurationError {
	return &ConfigurationError{
		Problems: problems,
		Stack:    goerrors.New("configuration invalid").Stack(),
	}
}

func stackOf(err error) []byte {
	if err == nil {
		return nil
	}
	var ge *goerrors.Error
	if errors.As(err, &ge) {
		return ge.Stack()
	}
	return goerrors.Wrap(err, 2).Stack()
}

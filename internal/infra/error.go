package infra

import (
	"errors"

	"gaya-booking/internal/pkg/errs"
)

type ErrorKind string

// Kinds shared by the storage and processor adapters. Usecases branch on the
// kind, never on the wrapped driver error.
const (
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindDBFailure           ErrorKind = "DB_FAILURE"
	KindDuplicateKey        ErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated  ErrorKind = "FOREIGN_KEY_VIOLATED"
	KindUpstreamDeclined    ErrorKind = "UPSTREAM_DECLINED"
	KindUpstreamFailure     ErrorKind = "UPSTREAM_FAILURE"
	KindUpstreamUnavailable ErrorKind = "UPSTREAM_UNAVAILABLE"
	KindStorageFailure      ErrorKind = "STORAGE_FAILURE"
)

type AdapterError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e AdapterError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e AdapterError) Unwrap() error {
	return e.err
}

func WrapErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return AdapterError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e AdapterError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

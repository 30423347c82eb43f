package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark ties markErr to err so the sentinel is matchable with plain
// errors.Is while the cause keeps its message and stack. cr.Mark alone is not
// enough here: its marker is only visible to cockroachdb's own Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(err, markErr)
}

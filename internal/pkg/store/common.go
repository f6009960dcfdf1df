package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WriteError means an append or replace of a store did not happen. Nothing partial is committed.
type WriteError struct {
	Resource Resource
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Resource.FileName(), e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// не повторяем то, что повтором не лечится
var permanent = []error{fs.ErrPermission, fs.ErrInvalid}

func wrapErr(r Resource, err error) error {
	if err == nil {
		return nil
	}
	return &WriteError{Resource: r, Err: err}
}

// retry runs op with the short constant backoff used for file opens.
func retry(ctx context.Context, op func() error) error {
	return backoff.Retry(func() error {
		err := op()
		for _, p := range permanent {
			if errors.Is(err, p) {
				return backoff.Permanent(err)
			}
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 10), ctx))
}

package internal

import "github.com/sethvargo/go-retry"

// RetryableErrorWrap marks err as retryable when filter matches it. Errors the filter rejects are
// returned unchanged, which stops retry.Do.
func RetryableErrorWrap(filter func(error) error, err error) error {
	if err == nil {
		return nil
	}

	if e := filter(err); e != nil {
		return retry.RetryableError(e)
	}

	return err
}

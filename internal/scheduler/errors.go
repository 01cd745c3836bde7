package scheduler

import "errors"

// ErrNotLeased is returned by Complete and Fail when the job id has no
// active lease: never leased, already completed, or already failed.
var ErrNotLeased = errors.New("job not leased")

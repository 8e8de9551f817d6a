package finch

import (
	"context"

	"github.com/michaelfm1211/gofinch/pkg/finch/hid"
	"github.com/michaelfm1211/gofinch/pkg/run"
)

// Task is the caller-supplied logic run against an open session.
type Task func(context.Context, *Session) error

// Run acquires a session, runs the task, and releases the session on
// every exit path. The idle command and the transport close happen
// exactly once whether the task succeeds or fails. When both the task
// and the teardown fail, both errors are surfaced with the task error
// first.
//
// Opening the device may require an interactive permission grant from
// the host environment, so Run must be invoked as a direct consequence
// of a user-initiated action.
func Run(ctx context.Context, dev hid.Device, task Task) error {
	s, err := Open(ctx, dev)
	if err != nil {
		return err
	}
	var errs run.Errors
	errs.Add(task(ctx, s))
	errs.Add(s.Close())
	return errs.Err()
}

// Package run provides small lifecycle helpers: context-aware wrappers
// for blocking functions and error aggregation for teardown paths.
package run

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
)

// WithContextCancel runs a func which doesn't accept a context.
// cancel is called only when the context is canceled.
func WithContextCancel(ctx context.Context, onCancel func(), fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()
	select {
	case <-ctx.Done():
		if onCancel != nil {
			onCancel()
		}
		<-errCh
		return context.Canceled
	case err := <-errCh:
		return err
	}
}

// WithContext is the simplified form with no cancel callback.
func WithContext(ctx context.Context, fn func() error) error {
	return WithContextCancel(ctx, nil, fn)
}

// WithContextCloser wraps WithContextCancel and ensures closer.Close is
// called exactly once, either on cancel or after fn returns.
func WithContextCloser(ctx context.Context, closer io.Closer, fn func() error) error {
	var closed bool
	err := WithContextCancel(ctx, func() {
		closer.Close()
		closed = true
	}, fn)
	if !closed {
		closer.Close()
	}
	return err
}

// SignalContext derives a context canceled on the first interrupt or
// SIGTERM. A second signal force-exits the process.
func SignalContext(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		glog.Info("stop requested")
		cancel()
		<-sigCh
		glog.Error("stop requested again, force exit")
		os.Exit(1)
	}()
	return ctx
}

//go:build unix

package core

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// NotifyContext cancels the returned context on interrupt, SIGTERM or SIGHUP
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, unix.SIGTERM, unix.SIGHUP)
}

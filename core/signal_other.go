//go:build !unix

package core

import (
	"context"
	"os"
	"os/signal"
)

// NotifyContext cancels the returned context on interrupt
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

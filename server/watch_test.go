package server

import (
	"context"
	"testing"
	"time"
)

func TestWatchRejectsBadCronExpression(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := Watch(ctx, "not a cron expression", "STOP", "STOP", nil); err == nil {
		t.Fatalf("expected an error for a malformed cron expression")
	}
}

func TestWatchReturnsPromptlyWhenContextIsAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, "* * * * *", "STOP", "STOP", nil)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned an error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Watch did not return promptly for an already-cancelled context")
	}
}

// Package spinning shows a spinning symbol on the terminal while the program waits, e.g. during the
// pause between two rounds, and restores the terminal on interruption.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Spinning animation running on its own goroutine. Stop it with Done.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeAscii, but it can be set to anything else.
	Theme = ThemeAscii

	// Output where the animation is drawn.
	Output io.Writer = os.Stdout

	// Interval between animation frames.
	Interval = 150 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Fprintln(Output)
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Fprint(Output, "\033[?25h\033[39;49;0m\n")
}

// New starts the animation after the given message. It stops when ctx is done or Spinning.Done is called.
func New(ctx context.Context, message string) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		fmt.Fprint(Output, "\033[?25l")       // Hide cursor.
		defer fmt.Fprint(Output, "\033[?25h") // Restore cursor.
		for idx := 0; ; idx = (idx + 1) % len(theme) {
			fmt.Fprintf(Output, "\r%s %c ", message, theme[idx])
			select {
			case <-ctx.Done():
				fmt.Fprint(Output, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Done stops the animation and clears its line. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}

// Pause spins for the given duration, or until ctx is done, in which case it returns ctx.Err().
func Pause(ctx context.Context, message string, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}
	s := New(ctx, message)
	defer s.Done()
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

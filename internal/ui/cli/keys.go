package cli

import (
	"context"
	. "github.com/janpfeifer/tronGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"
	"os"
	"sync"
)

// Command is a parsed key press.
type Command struct {
	Dir  Direction
	Quit bool
}

// ParseKeys converts raw terminal input into commands: arrows or WASD steer, "q", Esc or Ctrl+C quit.
// Unknown keys are ignored.
func ParseKeys(buf []byte) (commands []Command) {
	for ii := 0; ii < len(buf); ii++ {
		b := buf[ii]
		switch b {
		case 'w', 'W':
			commands = append(commands, Command{Dir: Up})
		case 's', 'S':
			commands = append(commands, Command{Dir: Down})
		case 'a', 'A':
			commands = append(commands, Command{Dir: Left})
		case 'd', 'D':
			commands = append(commands, Command{Dir: Right})
		case 'q', 'Q', 0x03:
			commands = append(commands, Command{Quit: true})
		case 0x1b:
			// Arrow keys arrive as "Esc [ A".."Esc [ D"; a lone Esc quits.
			if ii+2 < len(buf) && buf[ii+1] == '[' {
				switch buf[ii+2] {
				case 'A':
					commands = append(commands, Command{Dir: Up})
				case 'B':
					commands = append(commands, Command{Dir: Down})
				case 'C':
					commands = append(commands, Command{Dir: Right})
				case 'D':
					commands = append(commands, Command{Dir: Left})
				}
				ii += 2
				continue
			}
			commands = append(commands, Command{Quit: true})
		}
	}
	return
}

// Steering holds the direction requested by a human player, to be used in the next move.
// Requests to reverse onto the player's own trail are ignored.
//
// It is safe for concurrent use: keys are read on a separate goroutine.
type Steering struct {
	mu   sync.Mutex
	next Direction
}

// NewSteering starts with the given direction.
func NewSteering(initial Direction) *Steering {
	return &Steering{next: initial}
}

// Request a new direction. It is ignored if it reverses lastMove.
func (s *Steering) Request(dir Direction, lastMove Direction) {
	if dir == lastMove.Opposite() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = dir
}

// Next returns the direction to take.
func (s *Steering) Next() Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// KeyReader reads key presses from the terminal in raw mode.
type KeyReader struct {
	fd       int
	oldState *term.State
	commands chan Command
}

// NewKeyReader puts the terminal in raw mode and starts reading key presses until ctx is done.
// Call Close to restore the terminal.
func NewKeyReader(ctx context.Context) (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal, can't read keys")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set terminal to raw mode")
	}
	kr := &KeyReader{fd: fd, oldState: oldState, commands: make(chan Command, 16)}
	go kr.loop(ctx)
	return kr, nil
}

func (kr *KeyReader) loop(ctx context.Context) {
	buf := make([]byte, 16)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			klog.V(1).Infof("KeyReader stopped: %v", err)
			return
		}
		for _, cmd := range ParseKeys(buf[:n]) {
			select {
			case kr.commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Commands returns the channel where key presses are delivered.
func (kr *KeyReader) Commands() <-chan Command {
	return kr.commands
}

// Close restores the terminal to its previous state.
func (kr *KeyReader) Close() error {
	return term.Restore(kr.fd, kr.oldState)
}

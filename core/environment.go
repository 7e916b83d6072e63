package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EnvironmentInterface is the engine's view of the game process.
type EnvironmentInterface interface {
	ReadUpdate() (*Update, error)
	WriteAction(cmd string)
	FlushActions() error
	Finish() error
	Flush() error
}

// Environment speaks the line protocol of the game engine over a reader and
// a writer, normally stdin and stdout.
type Environment struct {
	scanner *bufio.Scanner
	out     *bufio.Writer
	pending []string
}

// NewEnvironment creates a new Environment.
func NewEnvironment(r io.Reader, w io.Writer) *Environment {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Environment{
		scanner: scanner,
		out:     bufio.NewWriter(w),
	}
}

func (e *Environment) readLine() (string, error) {
	if !e.scanner.Scan() {
		if err := e.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read from game: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(e.scanner.Text()), nil
}

// ReadInit reads the match header.
func (e *Environment) ReadInit() (*Init, error) {
	team, err := e.readLine()
	if err != nil {
		return nil, err
	}
	size, err := e.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing map size", ErrProtocol)
		}
		return nil, err
	}
	return Parser.Init(team, size)
}

// ReadUpdate blocks until a full update block has been read. io.EOF is
// returned only when the stream ends between turns.
func (e *Environment) ReadUpdate() (*Update, error) {
	update := &Update{}
	started := false
	for {
		line, err := e.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				return nil, fmt.Errorf("%w: update truncated", ErrProtocol)
			}
			return nil, err
		}
		started = true
		if line == DoneMarker {
			return update, nil
		}
		if err := Parser.ParseLine(line, update); err != nil {
			return nil, err
		}
	}
}

// WriteAction queues a command for this turn.
func (e *Environment) WriteAction(cmd string) {
	e.pending = append(e.pending, cmd)
}

// FlushActions writes all queued commands as one comma separated line.
func (e *Environment) FlushActions() error {
	_, err := e.out.WriteString(strings.Join(e.pending, ",") + "\n")
	e.pending = e.pending[:0]
	if err != nil {
		return fmt.Errorf("failed to write actions: %w", err)
	}
	return nil
}

// Finish marks the end of this turn's output.
func (e *Environment) Finish() error {
	if _, err := e.out.WriteString(FinishMarker + "\n"); err != nil {
		return fmt.Errorf("failed to write finish marker: %w", err)
	}
	return nil
}

// Flush pushes buffered output to the game.
func (e *Environment) Flush() error {
	if err := e.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

package game

import (
	"io"

	"luxbot/core"
)

// MockEnvironment feeds scripted updates to the engine and records what it
// writes back.
type MockEnvironment struct {
	Updates      []*core.Update
	ReadErr      error
	FlushErr     error
	Written      [][]string
	Finished     int
	Flushed      int
	pending      []string
	ReadUpdateFn func() (*core.Update, error)
}

// NewMockEnvironment creates a mock that serves updates in order and then
// reports io.EOF.
func NewMockEnvironment(updates ...*core.Update) *MockEnvironment {
	return &MockEnvironment{Updates: updates}
}

func (m *MockEnvironment) ReadUpdate() (*core.Update, error) {
	if m.ReadUpdateFn != nil {
		return m.ReadUpdateFn()
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if len(m.Updates) == 0 {
		return nil, io.EOF
	}
	u := m.Updates[0]
	m.Updates = m.Updates[1:]
	return u, nil
}

func (m *MockEnvironment) WriteAction(cmd string) {
	m.pending = append(m.pending, cmd)
}

func (m *MockEnvironment) FlushActions() error {
	if m.FlushErr != nil {
		return m.FlushErr
	}
	m.Written = append(m.Written, m.pending)
	m.pending = nil
	return nil
}

func (m *MockEnvironment) Finish() error {
	m.Finished++
	return nil
}

func (m *MockEnvironment) Flush() error {
	m.Flushed++
	return nil
}

// LastTurn returns the commands of the most recently flushed turn.
func (m *MockEnvironment) LastTurn() []string {
	if len(m.Written) == 0 {
		return nil
	}
	return m.Written[len(m.Written)-1]
}

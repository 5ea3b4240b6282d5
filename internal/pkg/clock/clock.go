package clock

import "time"

// Clock abstracts time lookup so stores and journals can be tested
// against a fixed timeline.
type Clock interface {
	Now() time.Time
}

// realClock reads the system time.
type realClock struct{}

// NewRealClock returns the production Clock backed by the system time.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable Clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock returns a MockClock frozen at the given instant.
func NewMockClock(at time.Time) *MockClock {
	return &MockClock{current: at}
}

// Now returns the mock instant.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the mock clock to the given instant.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

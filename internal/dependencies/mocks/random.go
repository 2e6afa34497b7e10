package mocks

import (
	"fmt"

	"github.com/ahoy-games/broadside/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing. Queued values
// are returned in order; when the queue runs dry, IDs fall back to a
// deterministic counter so tests that don't care about IDs stay terse.
type MockRandom struct {
	IDResults []string
	idIndex   int

	CodeResults []string
	codeIndex   int

	counter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// ID returns the next queued ID, or a sequential fallback
func (r *MockRandom) ID() string {
	if r.idIndex < len(r.IDResults) {
		result := r.IDResults[r.idIndex]
		r.idIndex++
		return result
	}
	r.counter++
	return fmt.Sprintf("id-%04d", r.counter)
}

// Code returns the next queued code, or a sequential fallback
func (r *MockRandom) Code(length int, alphabet string) string {
	if r.codeIndex < len(r.CodeResults) {
		result := r.CodeResults[r.codeIndex]
		r.codeIndex++
		return result
	}
	r.counter++
	return fmt.Sprintf("CODE%04d", r.counter)
}

// QueueID adds values to the ID result queue
func (r *MockRandom) QueueID(values ...string) {
	r.IDResults = append(r.IDResults, values...)
}

// QueueCode adds values to the Code result queue
func (r *MockRandom) QueueCode(values ...string) {
	r.CodeResults = append(r.CodeResults, values...)
}

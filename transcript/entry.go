// Package transcript turns a growing list of chat entries into styled,
// wrapped lines that a virtual list can show one row per line.
package transcript

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Role is the author of an entry.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
	RoleSystem
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	case RoleSystem:
		return "system"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Entry is one message in the transcript. Body is markdown.
type Entry struct {
	ID   ulid.ULID
	Role Role
	Body string
	At   time.Time
}

// IDSource hands out ULIDs that sort in creation order, even for entries
// created within the same millisecond.
type IDSource struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewIDSource creates a source reading entropy from crypto/rand.
func NewIDSource() *IDSource {
	return NewIDSourceWith(time.Now, rand.Reader)
}

// NewIDSourceWith creates a source with an explicit clock and entropy.
func NewIDSourceWith(now func() time.Time, entropy io.Reader) *IDSource {
	return &IDSource{now: now, entropy: ulid.Monotonic(entropy, 0)}
}

// Next returns a new ID and the time it encodes.
func (s *IDSource) Next() (ulid.ULID, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.now()
	id, err := ulid.New(ulid.Timestamp(at), s.entropy)
	if err != nil {
		return ulid.ULID{}, at, fmt.Errorf("transcript: new id: %w", err)
	}
	return id, at, nil
}

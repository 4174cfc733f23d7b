package session

import (
	"errors"
	"sync"
	"time"
)

// noticeTTL is how long a transient confirmation stays up before the
// session clears it on its own.
const noticeTTL = 3500 * time.Millisecond

// ErrClosed reports an action applied to an ended session.
var ErrClosed = errors.New("session: closed")

// Session is one live demo session: a state value guarded by a mutex,
// plus the timer that clears transient notices. All mutation goes
// through Apply.
type Session struct {
	ID        string
	CreatedAt time.Time

	clock     func() time.Time
	noticeTTL time.Duration

	mu          sync.Mutex
	state       State
	lastSeen    time.Time
	noticeTimer *time.Timer
	closed      bool
}

// Apply runs one action against the session. It is the only mutation
// path; notice timers are armed here, never inside Reduce.
func (s *Session) Apply(a Action) (State, Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return State{}, Change{}, ErrClosed
	}

	next, ch, err := Reduce(s.state, a, s.clock())
	if err != nil {
		return s.state, Change{}, err
	}
	s.state = next
	if ch.Notice != "" {
		s.armNoticeClear(ch.NoticeSeq)
	}
	return next, ch, nil
}

// armNoticeClear schedules the automatic clear for the notice with the
// given sequence, cancelling whatever clear was pending before. Caller
// holds s.mu.
func (s *Session) armNoticeClear(seq uint64) {
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
	}
	s.noticeTimer = time.AfterFunc(s.noticeTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		// The sequence guard makes a stale firing harmless: if a newer
		// notice took the slot, this reduces to a no-op.
		next, _, _ := Reduce(s.state, ClearNotice{Seq: seq}, s.clock())
		s.state = next
	})
}

// Snapshot returns the current state. The snapshot shares its slices
// with the live state; Reduce never mutates them in place, so treat
// them as read-only.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close stops the notice timer and marks the session ended. Safe to
// call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
		s.noticeTimer = nil
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) lastSeenAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Package registry provides the in-memory activity registry for the signup server.
package registry

import (
	"errors"
	"sync"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp is returned when the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("already signed up")
)

// Activity describes one extracurricular offering and its roster.
// Participants are kept in signup order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry manages activity storage in memory.
// The set of activities is fixed at construction; only rosters change.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// New creates a registry seeded with a deep copy of the given activities.
func New(seed map[string]Activity) *Registry {
	r := &Registry{}
	r.seed(seed)
	return r
}

// seed replaces the registry contents with a deep copy of the given activities.
// Must not be called with the lock held.
func (r *Registry) seed(seed map[string]Activity) {
	activities := make(map[string]*Activity, len(seed))
	for name, a := range seed {
		copied := a
		copied.Participants = append([]string(nil), a.Participants...)
		activities[name] = &copied
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = activities
}

// Reset restores the registry to the given seed. Used by tests to get a
// known state without constructing a new server.
func (r *Registry) Reset(seed map[string]Activity) {
	r.seed(seed)
}

// List returns a snapshot of all activities. The returned map and rosters
// are copies; mutating them does not affect the registry.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		copied := *a
		copied.Participants = append([]string(nil), a.Participants...)
		out[name] = copied
	}
	return out
}

// Get retrieves a snapshot of a single activity by name.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return copied, nil
}

// Signup adds email to the named activity's roster and returns the new
// roster size. The existence check, duplicate check and append happen under
// one lock so concurrent signups cannot double-append.
//
// Emails are opaque tokens: no normalization is applied, so two casings of
// the same address count as distinct participants. Capacity is not enforced;
// MaxParticipants is informational only.
func (r *Registry) Signup(name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}

	for _, p := range a.Participants {
		if p == email {
			return 0, ErrAlreadySignedUp
		}
	}

	a.Participants = append(a.Participants, email)
	return len(a.Participants), nil
}

// Len returns the number of activities in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Package registry implements an in-memory user store with sequential ids,
// the system under test for the fixture suite. It has no durable backend
// and no network surface; callers are other in-process packages and tests.
package registry

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is a concurrency-safe in-memory store of users. Records live in
// a map keyed by id with a separate slice maintaining insertion order for
// deterministic listing. Ids start at 1 and are never reused, even after
// deletion. All state is owned by the instance, so each test can work
// against a fresh Registry.
type Registry struct {
	mu     sync.RWMutex
	users  map[int]*User
	order  []int // insertion-order user ids
	nextID int
}

// New returns an initialized Registry ready for use.
func New() *Registry {
	return &Registry{
		users:  make(map[int]*User),
		nextID: 1,
	}
}

// CreateUser validates and stores a new user. The name is stored with
// surrounding whitespace trimmed and the email normalized to lowercase.
// It returns a ValidationError if the name is empty after trimming or the
// email is missing an "@"; no user is stored in that case.
func (r *Registry) CreateUser(name, email string) (User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return User{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return User{}, &ValidationError{Field: "email", Reason: fmt.Sprintf("%q is not an email address", email)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := &User{
		ID:     r.nextID,
		Name:   trimmed,
		Email:  strings.ToLower(email),
		Active: true,
	}
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
	r.nextID++
	return *u, nil
}

// GetUser returns a copy of the user with the given id. It returns a
// NotFoundError if no user with that id is stored.
func (r *Registry) GetUser(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, &NotFoundError{ID: id}
	}
	return *u, nil
}

// GetUserByEmail scans stored users in insertion order and returns the
// first whose email matches, comparing case-insensitively. The second
// return value reports whether a match was found; an absent email is a
// sentinel result, not an error.
func (r *Registry) GetUserByEmail(email string) (User, bool) {
	lower := strings.ToLower(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.users[id]; u.Email == lower {
			return *u, true
		}
	}
	return User{}, false
}

// ListUsers returns copies of stored users in insertion order. With
// activeOnly set, deactivated users are skipped; relative order is kept.
func (r *Registry) ListUsers(activeOnly bool) []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	return out
}

// DeactivateUser marks the user inactive and returns the updated record.
// Deactivating an already-inactive user succeeds and returns the same
// state. It returns a NotFoundError if the id is not stored.
func (r *Registry) DeactivateUser(id int) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, &NotFoundError{ID: id}
	}
	u.Active = false
	return *u, nil
}

// DeleteUser removes the user with the given id and reports whether a
// record was removed; deleting an absent id is a sentinel false, not an
// error. The freed id is never assigned again.
func (r *Registry) DeleteUser(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// CountUsers returns the number of currently stored users.
func (r *Registry) CountUsers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

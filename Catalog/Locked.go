package Catalog

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

// Locked guards a Catalog for callers on several goroutines. Insert and Remove are
// serialized behind a write lock; reads share a reader-biased lock, which fits a
// catalog that is loaded once and then mostly queried.
// Nothing returned by Locked points into the catalog, and there's no live traversal:
// Snapshot materializes the courses while holding the read lock.
type Locked struct {
	mu *xsync.RBMutex
	c  *Catalog
}

// NewLocked guards c, which the caller mustn't use directly afterwards. A nil c
// starts an empty catalog.
func NewLocked(c *Catalog) *Locked {
	if c == nil {
		c = New()
	}
	return &Locked{mu: xsync.NewRBMutex(), c: c}
}

// Insert [Catalog.Insert]
func (u *Locked) Insert(c Course) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Insert(c)
}

// Remove [Catalog.Remove]
func (u *Locked) Remove(code string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Remove(code)
}

// Find returns a copy of the course with code.
func (u *Locked) Find(code string) (Course, bool) {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	if c := u.c.Find(code); c != nil {
		return Course{c.Code, c.Title, slices.Clone(c.Prereqs)}, true
	}
	return Course{}, false
}

// Describe [Catalog.Describe]
func (u *Locked) Describe(code string) (Detail, bool) {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.c.Describe(code)
}

// Len [Catalog.Len]
func (u *Locked) Len() int {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.c.Len()
}

// Snapshot [Catalog.Snapshot]
func (u *Locked) Snapshot() []Course {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.c.Snapshot()
}

// Dangling [Catalog.Dangling]
func (u *Locked) Dangling() []Reference {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.c.Dangling()
}

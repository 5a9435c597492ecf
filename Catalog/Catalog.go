package Catalog

import (
	"iter"
	"slices"

	"github.com/g-m-twostay/coursetree/Trees"
)

// Catalog holds courses keyed by code in a Trees.BSTree, so listing is always in
// ascending code order. The tree is never rebalanced; loading a file sorted by code
// makes every operation linear in the number of courses.
// The zero value is an empty catalog ready to use. A Catalog is not safe for
// concurrent use, see Locked for that.
type Catalog struct {
	tree Trees.BSTree[string, Course]
}

func New() *Catalog {
	return new(Catalog)
}

// Insert c, replacing the title and prerequisites of the course with the same code if
// there's one. Returns true if c is a new course. The catalog keeps its own copy of
// c.Prereqs.
// Time: O(D)
func (u *Catalog) Insert(c Course) bool {
	c.Prereqs = slices.Clone(c.Prereqs)
	return u.tree.Put(c.Code, c)
}

// Find the course with code. Returns nil if there's none.
// The result points into the catalog: it stays valid until the course is removed or
// re-inserted, and removing another course may overwrite it as well.
// Time: O(D)
func (u *Catalog) Find(code string) *Course {
	return u.tree.Get(code)
}

// Remove the course with code. Returns false, leaving the catalog unchanged, if
// there's none.
// Time: O(D)
func (u *Catalog) Remove(code string) bool {
	return u.tree.Remove(code)
}

// Len is the number of courses.
func (u *Catalog) Len() int {
	return int(u.tree.Size())
}

// Courses in ascending code order. The sequence reads the catalog lazily each time it
// is ranged over; the catalog mustn't be modified during a range.
func (u *Catalog) Courses() iter.Seq[Course] {
	return func(yield func(Course) bool) {
		for _, c := range u.tree.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// Codes of the courses in ascending order.
func (u *Catalog) Codes() iter.Seq[string] {
	return u.tree.Keys()
}

// Snapshot copies the courses out in ascending code order.
// Time: O(n)
func (u *Catalog) Snapshot() []Course {
	s := make([]Course, 0, u.tree.Size())
	for c := range u.Courses() {
		c.Prereqs = slices.Clone(c.Prereqs)
		s = append(s, c)
	}
	return s
}

// Describe the course with code, resolving each of its prerequisites by looking it up.
// A prerequisite missing from the catalog is reported unresolved, not as a failure.
// The bool is false if there's no course with code.
// Time: O(D*(p+1)) for p prerequisites.
func (u *Catalog) Describe(code string) (Detail, bool) {
	c := u.Find(code)
	if c == nil {
		return Detail{}, false
	}
	d := Detail{Course: Course{Code: c.Code, Title: c.Title, Prereqs: slices.Clone(c.Prereqs)}}
	if len(c.Prereqs) > 0 {
		d.Resolved = make([]Prereq, len(c.Prereqs))
	}
	for i, p := range c.Prereqs {
		d.Resolved[i].Code = p
		if pc := u.Find(p); pc != nil {
			d.Resolved[i].Title, d.Resolved[i].Resolved = pc.Title, true
		}
	}
	return d, true
}

// Dangling lists every prerequisite that names no course, ordered by the code of the
// requiring course and then by position among its prerequisites.
// Time: O(n*p*D)
func (u *Catalog) Dangling() []Reference {
	var refs []Reference
	for c := range u.Courses() {
		for _, p := range c.Prereqs {
			if !u.tree.Has(p) {
				refs = append(refs, Reference{c.Code, p})
			}
		}
	}
	return refs
}

// Clear removes every course.
func (u *Catalog) Clear() {
	u.tree.Clear()
}

package Catalog

// Course is one record of the catalog.
// Code is the unique, case-sensitive key. Prereqs lists the codes of the courses
// required before this one, in the order they were given; a code there may name a
// course that isn't in the catalog.
type Course struct {
	Code    string
	Title   string
	Prereqs []string
}

// Prereq is a prerequisite code of a course resolved against the catalog.
// Title is empty and Resolved false when no course has the code.
type Prereq struct {
	Code     string
	Title    string
	Resolved bool
}

// Detail is a course together with its resolved prerequisites.
type Detail struct {
	Course
	Resolved []Prereq
}

// Reference is a prerequisite edge From a course To the code it requires.
type Reference struct {
	From, To string
}

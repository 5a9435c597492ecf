package menu

import (
	"fmt"
	"io"
	"iter"

	"github.com/g-m-twostay/coursetree/Catalog"
)

// PrintCourses writes one "CODE: Title" line per course.
func PrintCourses(w io.Writer, courses iter.Seq[Catalog.Course]) {
	for c := range courses {
		fmt.Fprintf(w, "%s: %s\n", c.Code, c.Title)
	}
}

// PrintDetail writes a course and its prerequisites. A prerequisite missing from the
// catalog is shown with "(title not found)".
func PrintDetail(w io.Writer, d Catalog.Detail) {
	fmt.Fprintf(w, "%s, %s\n", d.Code, d.Title)
	if len(d.Resolved) == 0 {
		fmt.Fprintln(w, "No prerequisites.")
		return
	}
	fmt.Fprint(w, "Prerequisites: ")
	for i, p := range d.Resolved {
		if i > 0 {
			fmt.Fprint(w, "; ")
		}
		if p.Resolved {
			fmt.Fprintf(w, "%s, %s", p.Code, p.Title)
		} else {
			fmt.Fprintf(w, "%s (title not found)", p.Code)
		}
	}
	fmt.Fprintln(w)
}

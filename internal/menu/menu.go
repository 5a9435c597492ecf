package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/coursetree/Catalog"
	"github.com/g-m-twostay/coursetree/internal/ctxlog"
	"github.com/g-m-twostay/coursetree/internal/ingest"
)

const menuText = `
Menu:
1. Load course data
2. Print all courses
3. Print course details
4. Remove a course
9. Exit
Choose option: `

// Session is one interactive run over a catalog. It is driven by the lines read
// from in and writes everything meant for the user to out.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *Catalog.Catalog
	file    string
	loaded  bool
}

// New returns a Session loading file into c. An empty file makes Run ask for it.
func New(in io.Reader, out io.Writer, c *Catalog.Catalog, file string) *Session {
	return &Session{in: bufio.NewScanner(in), out: out, catalog: c, file: file}
}

// readLine prompts and returns the next trimmed input line. ok is false at the end
// of input.
func (s *Session) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// Run the session until the user exits or the input ends. It fails only when no
// course file name can be obtained or the input can't be read.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if s.file == "" {
		s.file, _ = s.readLine("Enter course file name: ")
		if s.file == "" {
			return ingest.ErrNoFile
		}
	}
	logger.Debug("Session started.", "file", s.file)

	for {
		input, ok := s.readLine(menuText)
		if !ok {
			return s.in.Err()
		}
		if input == "" {
			fmt.Fprintln(s.out, "Error: No input provided. Please enter a menu option.")
			continue
		}
		opt, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(s.out, "Error: Invalid input. Please enter a number (1, 2, 3, 4, or 9).")
			continue
		}
		switch opt {
		case 1:
			s.load(ctx)
		case 2:
			if s.requireLoaded() {
				fmt.Fprintln(s.out, "\nCourses (alphanumeric order):")
				PrintCourses(s.out, s.catalog.Courses())
			}
		case 3:
			if s.requireLoaded() && !s.details() {
				return s.in.Err()
			}
		case 4:
			if s.requireLoaded() && !s.remove(ctx) {
				return s.in.Err()
			}
		case 9:
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please enter 1, 2, 3, 4, or 9.")
		}
	}
}

func (s *Session) requireLoaded() bool {
	if !s.loaded {
		fmt.Fprintln(s.out, "Please load course data first (Option 1).")
	}
	return s.loaded
}

func (s *Session) load(ctx context.Context) {
	if s.loaded {
		fmt.Fprintln(s.out, "Data already loaded.")
		return
	}
	if _, err := ingest.LoadFile(ctx, s.file, s.catalog); err != nil {
		ctxlog.FromContext(ctx).Error("Loading course data failed.", "error", err)
		fmt.Fprintf(s.out, "Failed to open file: %s\n", s.file)
		return
	}
	if dangling := s.catalog.Dangling(); len(dangling) > 0 {
		ctxlog.FromContext(ctx).Info("Catalog has unresolved prerequisites.", "count", len(dangling))
	}
	s.loaded = true
	fmt.Fprintln(s.out, "Course data loaded.")
}

// details returns false at the end of input.
func (s *Session) details() bool {
	code, ok := s.readLine("Enter course code to display: ")
	if !ok {
		return false
	}
	if code == "" {
		fmt.Fprintln(s.out, "Error: No course code entered.")
		return true
	}
	d, found := s.catalog.Describe(code)
	if !found {
		fmt.Fprintf(s.out, "Course not found: %s\n", code)
		return true
	}
	PrintDetail(s.out, d)
	return true
}

// remove returns false at the end of input.
func (s *Session) remove(ctx context.Context) bool {
	code, ok := s.readLine("Enter course code to remove: ")
	if !ok {
		return false
	}
	if code == "" {
		fmt.Fprintln(s.out, "Error: No course code entered.")
		return true
	}
	if !s.catalog.Remove(code) {
		fmt.Fprintf(s.out, "Course not found: %s\n", code)
		return true
	}
	ctxlog.FromContext(ctx).Info("Course removed.", "code", code)
	fmt.Fprintf(s.out, "Removed %s.\n", code)
	return true
}

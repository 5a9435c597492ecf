package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/g-m-twostay/coursetree/Catalog"
	"github.com/g-m-twostay/coursetree/internal/ctxlog"
)

// ErrNoFile is returned by LoadFile when it's given an empty path.
var ErrNoFile = errors.New("no course file name given")

const cutset = " \t\r\n"

// Inserter receives the parsed courses. *Catalog.Catalog and *Catalog.Locked are
// both Inserters.
type Inserter interface {
	Insert(c Catalog.Course) bool
}

// Stats counts what a read went through.
type Stats struct {
	Lines   int // every line read, including skipped ones
	Records int // courses handed to the Inserter
	Skipped int // non-blank, non-comment lines with fewer than two fields
}

// ParseLine parses one line. ok is false when the line carries no course: it's blank,
// a comment, or has fewer than two fields.
func ParseLine(line string) (c Catalog.Course, ok bool) {
	if ignorable(line) {
		return c, false
	}
	fields := strings.Split(strings.Trim(line, cutset), ",")
	if len(fields) < 2 {
		return c, false
	}
	c.Code, c.Title = strings.Trim(fields[0], cutset), strings.Trim(fields[1], cutset)
	for _, f := range fields[2:] {
		if f = strings.Trim(f, cutset); f != "" {
			c.Prereqs = append(c.Prereqs, f)
		}
	}
	return c, true
}

func ignorable(line string) bool {
	line = strings.Trim(line, cutset)
	return line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#")
}

// Read parses r line by line and inserts every course into dst in file order, so a
// code appearing twice ends up with its last line's title and prerequisites.
// Malformed lines are logged and skipped; only a read failure is an error, in which
// case the courses before it have already been inserted.
func Read(ctx context.Context, r io.Reader, dst Inserter) (Stats, error) {
	logger := ctxlog.FromContext(ctx)
	var st Stats
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		st.Lines++
		c, ok := ParseLine(sc.Text())
		if !ok {
			if !ignorable(sc.Text()) {
				st.Skipped++
				logger.Warn("Skipping line without a course title.", "line", st.Lines, "text", sc.Text())
			}
			continue
		}
		if !dst.Insert(c) {
			logger.Debug("Course replaced by a later line.", "code", c.Code, "line", st.Lines)
		}
		st.Records++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("reading line %d: %w", st.Lines+1, err)
	}
	return st, nil
}

// LoadFile opens path and Reads it into dst.
func LoadFile(ctx context.Context, path string, dst Inserter) (Stats, error) {
	if path == "" {
		return Stats{}, ErrNoFile
	}
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	st, err := Read(ctx, f, dst)
	if err != nil {
		return st, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Info("Course file loaded.", "path", path, "lines", st.Lines, "records", st.Records, "skipped", st.Skipped)
	return st, nil
}

package touch

import (
	"fmt"
	"strings"
	"time"
)

const (
	noCreateFlag = "--no-create"
	timePrefix   = "--time="
)

// Usage is printed when the tool is started without arguments
const Usage = "Usage: touch [options] <file1> [file2 ...]"

// DefaultTimeLayouts are tried in order when no layouts are configured
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// Request is the parsed command line of one invocation
type Request struct {
	NoCreate bool
	Time     time.Time // zero means "now"
	Paths    []string
	Notices  []string // problems with options, reported but not fatal
}

// HasTime reports whether an explicit --time was accepted
func (r Request) HasTime() bool {
	return !r.Time.IsZero()
}

// ParseArgs scans every option before collecting paths, so option position does not
// matter. Bad options produce a notice and are otherwise ignored.
func ParseArgs(args []string, layouts []string, loc *time.Location) Request {
	var req Request
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			req.Paths = append(req.Paths, arg)
			continue
		}

		switch {
		case arg == noCreateFlag:
			req.NoCreate = true
		case strings.HasPrefix(arg, timePrefix):
			value := strings.TrimPrefix(arg, timePrefix)
			t, err := ParseTime(value, layouts, loc)
			if err != nil {
				req.Notices = append(req.Notices, fmt.Sprintf("Invalid time format: %s", value))
				continue
			}
			req.Time = t
		default:
			req.Notices = append(req.Notices, fmt.Sprintf("Unknown option: %s", arg))
		}
	}
	return req
}

// ParseTime parses value with the first matching layout. Layouts without a zone are
// read in loc.
func ParseTime(value string, layouts []string, loc *time.Location) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	if loc == nil {
		loc = time.Local
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q matches none of %d layouts", value, len(layouts))
}

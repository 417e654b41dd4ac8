package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidValue  = errors.New("invalid value")
	ErrUnknownOption = errors.New("unknown option")
)

// ArgError describes a rejected command-line token
type ArgError struct {
	Err    error  // ErrInvalidValue or ErrUnknownOption
	Option string // the offending flag or token
	Reason string // optional detail
}

func (e *ArgError) Error() string {
	if e.Err == ErrUnknownOption {
		return fmt.Sprintf("Unknown option '%s'.", e.Option)
	}
	if e.Reason != "" {
		return fmt.Sprintf("Invalid value for '%s': %s.", e.Option, e.Reason)
	}
	return fmt.Sprintf("Invalid value for '%s'.", e.Option)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// Options is the parsed form of the calendar arguments
type Options struct {
	Year   int
	Month  time.Month // zero when -m was not given
	Before int
	After  int
}

// HasMonth reports whether an explicit month was requested
func (o Options) HasMonth() bool {
	return o.Month != 0
}

// Base returns the month the range is built around; without -m the month of now is used
func (o Options) Base(now time.Time) Month {
	if o.HasMonth() {
		return Month{Year: o.Year, Month: o.Month}
	}
	return Month{Year: o.Year, Month: now.Month()}
}

// Months returns the months to render for these options
func (o Options) Months(now time.Time) []Month {
	return MonthRange(o.Base(now), o.Before, o.After)
}

const (
	fullYearAfter = 11
	maxYear       = 9999
	maxSpan       = maxYear * 12
)

var valueFlags = map[string]bool{"-y": true, "-m": true, "-B": true, "-A": true}

// ParseArgs turns the raw argument list into Options. The whole list is checked for
// unknown tokens and non-integer values before any value is applied.
//
// Without -m, -A and -B but with at least one argument, the options describe a full year
// starting at the base month.
func ParseArgs(args []string, now time.Time) (Options, error) {
	if err := validateArgs(args); err != nil {
		return Options{}, err
	}

	opts := Options{Year: now.Year()}
	ranged := false
	for i := 0; i+1 < len(args); i += 2 {
		value, _ := parseInt(args[i+1])
		next, err := opts.with(args[i], value)
		if err != nil {
			return Options{}, err
		}
		opts = next
		if args[i] == "-A" || args[i] == "-B" {
			ranged = true
		}
	}

	if len(args) > 0 && !opts.HasMonth() && !ranged {
		opts.Before, opts.After = 0, fullYearAfter
	}
	return opts, nil
}

// validateArgs checks arity and integer syntax only
func validateArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		if !valueFlags[args[i]] {
			return &ArgError{Err: ErrUnknownOption, Option: args[i]}
		}
		if i+1 >= len(args) {
			return &ArgError{Err: ErrInvalidValue, Option: args[i]}
		}
		if _, err := parseInt(args[i+1]); err != nil {
			return &ArgError{Err: ErrInvalidValue, Option: args[i]}
		}
		i++
	}
	return nil
}

// with returns a copy of o with flag set to value
func (o Options) with(flag string, value int) (Options, error) {
	switch flag {
	case "-y":
		if value < 1 || value > maxYear {
			return o, &ArgError{Err: ErrInvalidValue, Option: flag, Reason: "year must be in 1..9999"}
		}
		o.Year = value
	case "-m":
		if value < 1 || value > 12 {
			return o, &ArgError{Err: ErrInvalidValue, Option: flag, Reason: "month must be in 1..12"}
		}
		o.Month = time.Month(value)
	case "-B":
		if value < 0 || value > maxSpan {
			return o, &ArgError{Err: ErrInvalidValue, Option: flag, Reason: fmt.Sprintf("must be in 0..%d", maxSpan)}
		}
		o.Before = value
	case "-A":
		if value < 0 || value > maxSpan {
			return o, &ArgError{Err: ErrInvalidValue, Option: flag, Reason: fmt.Sprintf("must be in 0..%d", maxSpan)}
		}
		o.After = value
	default:
		return o, &ArgError{Err: ErrUnknownOption, Option: flag}
	}
	return o, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

package touch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Outcome of touching a single path
type Outcome int

const (
	Updated Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Summary counts the outcomes of one run
type Summary struct {
	Updated int
	Skipped int
	Failed  int
}

// Updater creates files and sets their access and modification times
type Updater struct {
	fs  afero.Fs
	out io.Writer
	log *logrus.Entry
	now func() time.Time
}

// NewUpdater returns an updater working on fsys that reports one line per path to out
func NewUpdater(fsys afero.Fs, out io.Writer, log *logrus.Entry) *Updater {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Updater{fs: fsys, out: out, log: log, now: time.Now}
}

// Touch creates path unless it exists or noCreate is set, then stamps it with at
// (or the current time when at is zero).
func (u *Updater) Touch(path string, noCreate bool, at time.Time) (Outcome, error) {
	if _, err := u.fs.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Failed, err
		}
		if noCreate {
			return Skipped, nil
		}
		f, err := u.fs.Create(path)
		if err != nil {
			return Failed, err
		}
		if err := f.Close(); err != nil {
			return Failed, err
		}
		u.log.WithField("path", path).Debug("Created empty file")
	}

	if at.IsZero() {
		at = u.now()
	}
	if err := u.fs.Chtimes(path, at, at); err != nil {
		return Failed, err
	}
	return Updated, nil
}

// Run touches every path of req in order. A failure on one path is reported and the
// remaining paths are still processed.
func (u *Updater) Run(req Request) Summary {
	var sum Summary
	for _, path := range req.Paths {
		outcome, err := u.Touch(path, req.NoCreate, req.Time)
		entry := u.log.WithFields(logrus.Fields{"path": path, "outcome": outcome.String()})

		switch outcome {
		case Updated:
			sum.Updated++
			fmt.Fprintf(u.out, "Updated timestamp for '%s'\n", path)
			entry.Debug("Timestamp updated")
		case Skipped:
			sum.Skipped++
			fmt.Fprintf(u.out, "File does not exist: %s and --no-create is set.\n", path)
			entry.Info("Missing file skipped")
		case Failed:
			sum.Failed++
			fmt.Fprintf(u.out, "Error handling file '%s': %v\n", path, unwrapPathError(err))
			entry.WithError(err).Warn("Failed to touch file")
		}
	}
	return sum
}

// unwrapPathError drops the "op path:" prefix of *fs.PathError since the report line
// already names the path
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"calkit/internal/calendar"
	"calkit/internal/config"
	"calkit/internal/logger"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// useConfig points the commands at a config file written for the test
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv("CALKIT_LOCALE", "")
	t.Setenv("CALKIT_LOG_LEVEL", "")
	t.Cleanup(func() { logger.Close() })
}

func mustParse(t *testing.T, args []string, now time.Time) calendar.Options {
	t.Helper()
	opts, err := calendar.ParseArgs(args, now)
	if err != nil {
		t.Fatalf("ParseArgs(%q): %v", args, err)
	}
	return opts
}

const testConfig = `
calendar:
  locale: en
  highlight_today: never
log:
  console: false
`

var enCalendar = config.CalendarConfig{Locale: "en", HighlightToday: calendar.HighlightNever}

func TestRenderCalendar_NoArgsShowsCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.January, 17, 9, 0, 0, 0, time.UTC)
	var out bytes.Buffer

	if err := renderCalendar(&out, mustParse(t, nil, now), now, enCalendar, quietLog()); err != nil {
		t.Fatalf("renderCalendar: %v", err)
	}

	want := "    January 2024    \n" +
		"Mo Tu We Th Fr Sa Su\n" +
		" 1  2  3  4  5  6  7\n" +
		" 8  9 10 11 12 13 14\n" +
		"15 16 17 18 19 20 21\n" +
		"22 23 24 25 26 27 28\n" +
		"29 30 31            \n" +
		"\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRenderCalendar_FullYear(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	var out bytes.Buffer

	if err := renderCalendar(&out, mustParse(t, []string{"-y", "2024"}, now), now, enCalendar, quietLog()); err != nil {
		t.Fatalf("renderCalendar: %v", err)
	}

	text := out.String()
	for _, header := range []string{"March 2024", "December 2024", "February 2025"} {
		if !strings.Contains(text, header) {
			t.Errorf("output lacks %q", header)
		}
	}
	if strings.Contains(text, "February 2024") {
		t.Error("full year should start at the current month")
	}
	if n := strings.Count(text, "\n\n"); n != 4 {
		t.Errorf("expected 4 batches, found %d blank separators", n)
	}
}

func TestCalCmd_InvalidArgsHaveNoSideEffects(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	useConfig(t, testConfig+"  file_path: "+filepath.Join(logDir, "calkit.log")+"\n")

	tests := []struct {
		args    []string
		wantErr error
	}{
		{args: []string{"-y", "abc"}, wantErr: calendar.ErrInvalidValue},
		{args: []string{"-z", "5"}, wantErr: calendar.ErrUnknownOption},
		{args: []string{"-m", "2", "-A"}, wantErr: calendar.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			c := NewCalCmd()
			var out bytes.Buffer
			c.SetOut(&out)
			c.SetArgs(tt.args)

			err := c.Execute()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("output written on invalid arguments: %q", out.String())
			}
			if _, err := os.Stat(logDir); !os.IsNotExist(err) {
				t.Errorf("log directory created before arguments were rejected (stat err = %v)", err)
			}
		})
	}

	c := NewCalCmd()
	c.SetOut(io.Discard)
	c.SetArgs([]string{"-m", "2"})
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(logDir); err != nil {
		t.Errorf("log directory missing after a valid run: %v", err)
	}
}

// foreignWorkdir moves the test into a directory holding some other program's config.yaml
func foreignWorkdir(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("CALKIT_LOCALE", "")
	t.Setenv("CALKIT_LOG_LEVEL", "")
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { logger.Close() })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("name: my-site\nlog: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
}

func TestCalCmd_ForeignConfigInWorkdir(t *testing.T) {
	foreignWorkdir(t)

	c := NewCalCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"-y", "2024", "-m", "2"})

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "февраль 2024") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTouchCmd_ForeignConfigInWorkdir(t *testing.T) {
	foreignWorkdir(t)
	target := filepath.Join(t.TempDir(), "stamp.txt")

	c := NewTouchCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{target})

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestReport(t *testing.T) {
	_, argErr := calendar.ParseArgs([]string{"-m", "13"}, time.Now())

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "success", err: nil, wantCode: 0},
		{name: "argument error", err: argErr, wantCode: 1, wantStdout: argErr.Error() + "\n"},
		{name: "setup error", err: errors.New("failed to load config: boom"), wantCode: 1,
			wantStderr: "Error: failed to load config: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := Report(tt.err, &stdout, &stderr); code != tt.wantCode {
				t.Errorf("Report() = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestCalCmd_Execute(t *testing.T) {
	useConfig(t, testConfig)

	c := NewCalCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"-y", "2024", "-m", "2", "-A", "2"})

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	first := strings.SplitN(out.String(), "\n", 2)[0]
	for _, header := range []string{"February 2024", "March 2024", "April 2024"} {
		if !strings.Contains(first, header) {
			t.Errorf("first row %q lacks %q", first, header)
		}
	}
}

func TestCalCmd_UnknownOption(t *testing.T) {
	useConfig(t, testConfig)

	c := NewCalCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--help"})

	err := c.Execute()
	if !errors.Is(err, calendar.ErrUnknownOption) {
		t.Errorf("Execute() error = %v, want unknown option", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestTouchCmd_NoArgsPrintsUsage(t *testing.T) {
	c := NewTouchCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{})

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Usage: touch") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTouchCmd_Execute(t *testing.T) {
	useConfig(t, testConfig)
	dir := t.TempDir()
	target := filepath.Join(dir, "stamp.txt")

	c := NewTouchCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--time=2021-06-01 12:00:00", target})

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	want := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.Local)
	if !info.ModTime().Equal(want) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), want)
	}
	if !strings.Contains(out.String(), "Updated timestamp for") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTouchFiles_NoticesAndSkips(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var out bytes.Buffer
	tc := config.TouchConfig{}
	tc.ApplyDefaults()

	sum := touchFiles(&out, []string{"--time=soon", "--no-create", "-x", "missing.txt"}, fsys, tc, quietLog())

	if sum.Skipped != 1 || sum.Updated != 0 || sum.Failed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	want := "Invalid time format: soon\n" +
		"Unknown option: -x\n" +
		"File does not exist: missing.txt and --no-create is set.\n"
	if out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", out.String(), want)
	}
	if exists, _ := afero.Exists(fsys, "missing.txt"); exists {
		t.Error("file created despite --no-create")
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"

	"github.com/howijd/cryptdatum/internal/cryptdatum"
)

func validHeader() cryptdatum.Header {
	return cryptdatum.Header{
		Version:   cryptdatum.Version,
		Timestamp: cryptdatum.MagicDate,
		Size:      5,
	}
}

func invalidHeader() cryptdatum.Header {
	h := validHeader()
	h.Flags = cryptdatum.FlagChunked
	return h
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	short := filepath.Join(dir, "short")
	mustWriteFile(t, short, []byte{0xa7, 0xf6, 0xe5, 0xd4})
	empty := filepath.Join(dir, "empty")
	mustWriteFile(t, empty, nil)
	text := filepath.Join(dir, "text")
	mustWriteFile(t, text, []byte(strings.Repeat("not a cryptdatum file\n", 4)))

	valid := mustWriteHeader(t, validHeader(), []byte("hello"))
	invalid := mustWriteHeader(t, invalidHeader(), []byte("hello"))
	fullFeatured := filepath.Join(fixtureDir, "valid-header-full-featured.cdt")
	invalidFixture := filepath.Join(fixtureDir, "invalid-header-full-featured.cdt")
	minimal := filepath.Join(fixtureDir, "valid-header-minimal.cdt")

	for _, tc := range []struct {
		desc    string
		mode    checkMode
		files   []string
		wantErr error
	}{
		{"HasHeader/Valid", checkHasHeader, []string{valid, fullFeatured, minimal}, nil},
		{"HasHeader/Invalid", checkHasHeader, []string{invalid, invalidFixture}, nil},
		{"HasHeader/Short", checkHasHeader, []string{short}, cryptdatum.ErrUnsupportedFormat},
		{"HasHeader/Empty", checkHasHeader, []string{empty}, cryptdatum.ErrUnsupportedFormat},
		{"HasHeader/Text", checkHasHeader, []string{text}, cryptdatum.ErrUnsupportedFormat},
		{"HasHeader/SecondFails", checkHasHeader, []string{valid, text}, cryptdatum.ErrUnsupportedFormat},
		{"HasValidHeader/Valid", checkHasValidHeader, []string{valid, fullFeatured, minimal}, nil},
		{"HasValidHeader/Invalid", checkHasValidHeader, []string{invalid}, cryptdatum.ErrInvalidHeader},
		{"HasValidHeader/InvalidFixture", checkHasValidHeader, []string{invalidFixture}, cryptdatum.ErrInvalidHeader},
		{"HasValidHeader/Text", checkHasValidHeader, []string{text}, cryptdatum.ErrUnsupportedFormat},
		{"HasInvalidHeader/Invalid", checkHasInvalidHeader, []string{invalid, invalidFixture, text, short, empty}, nil},
		{"HasInvalidHeader/Valid", checkHasInvalidHeader, []string{valid}, errValidHeader},
		{"HasInvalidHeader/Directory", checkHasInvalidHeader, []string{dir}, nil},
		{"HasHeader/Directory", checkHasHeader, []string{dir}, cryptdatum.ErrIO},
		{"HasHeader/Missing", checkHasHeader, []string{filepath.Join(dir, "missing")}, os.ErrNotExist},
		{"HasInvalidHeader/Missing", checkHasInvalidHeader, []string{filepath.Join(dir, "missing")}, os.ErrNotExist},
		{"NoFiles", checkHasHeader, nil, errUsage},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			o, _, _ := testOptions(false)
			c := &checkCmd{mode: tc.mode, opts: o}
			if err := c.run(tc.files...); !errors.Is(err, tc.wantErr) {
				t.Errorf("%s %q returned error %v, want %v", c.Name(), tc.files, err, tc.wantErr)
			}
		})
	}
}

func TestCheck_ErrorNamesFile(t *testing.T) {
	t.Parallel()

	invalid := mustWriteHeader(t, invalidHeader(), nil)
	o, _, _ := testOptions(false)
	c := &checkCmd{mode: checkHasValidHeader, opts: o}
	err := c.run(invalid)
	if err == nil {
		t.Fatalf("file-has-valid-header succeeded on an invalid header")
	}
	if got, want := err.Error(), invalid+": cryptdatum: validate: invalid header: chunked flag set, want chunk size >= 1"; got != want {
		t.Errorf("file-has-valid-header returned error %q, want %q", got, want)
	}
}

func TestCheck_Execute(t *testing.T) {
	t.Parallel()

	valid := mustWriteHeader(t, validHeader(), nil)
	invalid := mustWriteHeader(t, invalidHeader(), nil)
	missing := filepath.Join(t.TempDir(), "missing")
	for _, tc := range []struct {
		desc       string
		mode       checkMode
		verbose    bool
		args       []string
		want       subcommands.ExitStatus
		wantStderr bool
	}{{
		desc: "Success",
		mode: checkHasValidHeader,
		args: []string{valid},
		want: subcommands.ExitSuccess,
	}, {
		desc: "QuietFailure",
		mode: checkHasValidHeader,
		args: []string{invalid},
		want: subcommands.ExitFailure,
	}, {
		desc:       "VerboseFailure",
		mode:       checkHasValidHeader,
		verbose:    true,
		args:       []string{invalid},
		want:       subcommands.ExitFailure,
		wantStderr: true,
	}, {
		desc:       "MissingFileAlwaysReported",
		mode:       checkHasHeader,
		args:       []string{missing},
		want:       subcommands.ExitFailure,
		wantStderr: true,
	}, {
		desc:       "NoFiles",
		mode:       checkHasInvalidHeader,
		want:       subcommands.ExitUsageError,
		wantStderr: true,
	}, {
		desc: "InvalidModeSuccess",
		mode: checkHasInvalidHeader,
		args: []string{invalid},
		want: subcommands.ExitSuccess,
	}} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			o, stdout, stderr := testOptions(tc.verbose)
			c := &checkCmd{mode: tc.mode, opts: o}
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			if err := fs.Parse(tc.args); err != nil {
				t.Fatalf("Failed to parse %q: %s", tc.args, err)
			}
			if got := c.Execute(context.Background(), fs); got != tc.want {
				t.Errorf("%s %q exited with %v, want %v", c.Name(), tc.args, got, tc.want)
			}
			if stdout.Len() != 0 {
				t.Errorf("%s %q printed %q to stdout, want nothing", c.Name(), tc.args, stdout)
			}
			if got := stderr.Len() > 0; got != tc.wantStderr {
				t.Errorf("%s %q printed %q to stderr, want output? %t", c.Name(), tc.args, stderr, tc.wantStderr)
			}
		})
	}
}

func TestCheck_Names(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		mode checkMode
		want string
	}{
		{checkHasHeader, "file-has-header"},
		{checkHasValidHeader, "file-has-valid-header"},
		{checkHasInvalidHeader, "file-has-invalid-header"},
	} {
		c := &checkCmd{mode: tc.mode}
		if got := c.Name(); got != tc.want {
			t.Errorf("checkCmd{mode: %d}.Name() = %q, want %q", tc.mode, got, tc.want)
		}
		if !strings.Contains(c.Usage(), tc.want) {
			t.Errorf("%s usage %q does not name the command", tc.want, c.Usage())
		}
	}
}

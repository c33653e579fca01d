package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/engine"
)

// MockFetcher simulates the engine.VCardFetcher interface using testify/mock.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// execute runs the command tree with args in an isolated cache and config directory.
func execute(t *testing.T, opts *cliOptions, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("LocalAppData", dir)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Cleanup(opts.close)

	if !containsFlag(args, "--"+config.FlagConfig) {
		args = append(args, "--"+config.FlagConfig, filepath.Join(dir, "missing.yaml"))
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCalc_Rows(t *testing.T) {
	out, _, err := execute(t, &cliOptions{}, "calc", "29", "2", "2000", "--today", "2024-03-01")
	require.NoError(t, err)

	assert.Contains(t, out, "Age")
	assert.Contains(t, out, "24 years")
	assert.Contains(t, out, "Mar 1, 2025")
	assert.Contains(t, out, "Pisces")
	assert.NotContains(t, out, "Happy Birthday!")
	assert.Equal(t, 11, strings.Count(out, "\n"))
}

func TestCalc_BirthdayToday(t *testing.T) {
	out, _, err := execute(t, &cliOptions{}, "calc", "15", "6", "1990", "--today", "2025-06-15")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Happy Birthday!"))
	assert.Contains(t, out, "0 - It's your birthday!")
	assert.Contains(t, out, "Jun 15, 2025 (Today!)")
}

func TestCalc_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		sentinel error
		notice   string
	}{
		{"Invalid", []string{"calc", "31", "4", "2000", "--today", "2024-03-01"}, engine.ErrInvalidDate, "Invalid Date"},
		{"Future", []string{"calc", "15", "6", "2030", "--today", "2024-03-01"}, engine.ErrFutureDate, "Future Date"},
		{"Not a number", []string{"calc", "x", "6", "1990"}, engine.ErrInvalidDate, "Invalid Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, &cliOptions{}, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.notice)

			var notice noticeError
			assert.True(t, errors.As(err, &notice), "Notice was printed")
			assert.Equal(t, config.ExitCodeError, exitCode(err))
		})
	}
}

func TestCalc_BadArguments(t *testing.T) {
	_, _, err := execute(t, &cliOptions{}, "calc", "15", "6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrArgsCount)

	_, _, err = execute(t, &cliOptions{}, "calc", "15", "6", "1990", "--today", "15/06/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrTodayFlag)
}

func TestCalc_ICS(t *testing.T) {
	out, _, err := execute(t, &cliOptions{}, "calc", "29", "2", "2000", "--today", "2024-03-01", "--ics")
	require.NoError(t, err)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250301")
	assert.Contains(t, out, "SUMMARY:"+config.SummaryNoName)
}

const cards = `BEGIN:VCARD
VERSION:3.0
FN:No Year
BDAY:--03-04
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Jane Doe
BDAY:1990-06-15
END:VCARD
`

func TestVCard_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	require.NoError(t, os.WriteFile(path, []byte(cards), config.FilePermUserRW))

	out, _, err := execute(t, &cliOptions{}, "vcard", path, "--today", "2025-06-15")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Jane Doe\n"), "First contact with a year is used")
	assert.Contains(t, out, "Happy Birthday!")
	assert.Contains(t, out, "35 years")
}

func TestVCard_Remote(t *testing.T) {
	fetcher := new(MockFetcher)
	url := "https://dav.example.com/contacts.vcf"
	fetcher.On("Fetch", mock.Anything, url).Return(io.NopCloser(strings.NewReader(cards)), nil)

	out, _, err := execute(t, &cliOptions{fetcher: fetcher}, "vcard", url, "--today", "2025-01-01", "--ics")
	require.NoError(t, err)

	assert.Contains(t, out, "SUMMARY:Jane Doe")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250615")
	fetcher.AssertExpectations(t)
}

func TestVCard_Errors(t *testing.T) {
	fetcher := new(MockFetcher)
	url := "https://dav.example.com/broken.vcf"
	fetcher.On("Fetch", mock.Anything, url).Return(nil, errors.New("boom"))

	_, _, err := execute(t, &cliOptions{fetcher: fetcher}, "vcard", url)
	assert.EqualError(t, err, "boom")

	_, _, err = execute(t, &cliOptions{}, "vcard", filepath.Join(t.TempDir(), "missing.vcf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "noyear.vcf")
	require.NoError(t, os.WriteFile(path, []byte("BEGIN:VCARD\nVERSION:3.0\nFN:A\nBDAY:--03-04\nEND:VCARD\n"), config.FilePermUserRW))
	_, _, err = execute(t, &cliOptions{}, "vcard", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrNoBirthDate)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, &cliOptions{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, config.Version)
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("burst:\n  particles: -1\n"), config.FilePermUserRW))
	_, _, err := execute(t, &cliOptions{}, "calc", "1", "1", "2000", "--"+config.FlagConfig, invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsInvalid)

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("burst:\n  particles: 60\n"), config.FilePermUserRW))
	opts := &cliOptions{}
	_, _, err = execute(t, opts, "calc", "15", "6", "1990", "--today", "2025-06-15", "--"+config.FlagConfig, valid)
	require.NoError(t, err)
	assert.Equal(t, 60, opts.settings.Burst.Particles)
}

func TestDebugLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, &cliOptions{}, "calc", "1", "1", "2000", "--today", "2025-01-01", "--"+config.FlagDebug)
	require.NoError(t, err)

	assert.NotContains(t, out, config.MsgAppStarting, "Results stay clean on stdout")
	assert.Contains(t, errOut, config.MsgAppStarting)
	assert.Contains(t, errOut, `"component":"cli"`)
}

func TestCalculator_Today(t *testing.T) {
	opts := &cliOptions{today: "2024-02-29"}
	calc, err := opts.calculator()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), calc.Now())

	calc, err = (&cliOptions{}).calculator()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), calc.Now(), time.Minute)
}

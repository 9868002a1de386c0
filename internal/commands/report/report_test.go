package report

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/i18n"
	"github.com/thomas-vilte/flighttime/internal/tickets"
)

func init() {
	color.NoColor = true
}

type run struct {
	stdout string
	stderr string
	err    error
}

func newRootCommand(t *testing.T, cfg *config.Config) (*cli.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	translations, err := i18n.NewTranslations(cfg.Language, "")
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	cmd := NewReportCommandFactory(tickets.NewFileSource()).CreateCommand(translations, cfg)
	cmd.Writer = &out
	cmd.ErrWriter = &errOut

	return cmd, &out, &errOut
}

func runReport(t *testing.T, args ...string) run {
	t.Helper()

	cmd, out, errOut := newRootCommand(t, config.Default())
	err := cmd.Run(context.Background(), append([]string{"flighttime"}, args...))

	return run{stdout: out.String(), stderr: errOut.String(), err: err}
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestReportCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{
			name:       "empty file is a syntax error",
			args:       []string{fixture("empty.json")},
			wantStderr: "Wrong syntax in input file: Not a JSON Object: null\n",
		},
		{
			name:       "document without tickets",
			args:       []string{fixture("no_tickets.json")},
			wantStderr: "Error while reading input file: No \"tickets\" element in json file\n",
		},
		{
			name:       "empty tickets array",
			args:       []string{fixture("empty_tickets.json")},
			wantStdout: "No tickets\n",
		},
		{
			name: "zero duration",
			args: []string{fixture("zero_duration.json")},
			wantStdout: "Average time of flight = 00:00:00\n" +
				"90th percentile of flight time = 00:00:00\n",
		},
		{
			name: "duration under a day",
			args: []string{fixture("under_a_day.json")},
			wantStdout: "Average time of flight = 22:59:00\n" +
				"90th percentile of flight time = 22:59:00\n",
		},
		{
			name: "duration of exactly one day",
			args: []string{fixture("one_day.json")},
			wantStdout: "Average time of flight = 01:00:00:00\n" +
				"90th percentile of flight time = 01:00:00:00\n",
		},
		{
			name: "duration of several days",
			args: []string{fixture("three_days.json")},
			wantStdout: "Average time of flight = 03:02:16:00\n" +
				"90th percentile of flight time = 03:02:16:00\n",
		},
		{
			name: "mean and percentile over many tickets",
			args: []string{fixture("many_tickets.json")},
			wantStdout: "Average time of flight = 05:30:00\n" +
				"90th percentile of flight time = 09:00:00\n",
		},
		{
			name: "invalid tickets are listed in input order",
			args: []string{fixture("mixed_tickets.json")},
			wantStdout: "Average time of flight = 23:32:00\n" +
				"90th percentile of flight time = 23:32:00\n",
			wantStderr: "Ticket number 1 is wrong\n" +
				"Ticket number 2 is wrong\n" +
				"Ticket number 3 is wrong\n",
		},
		{
			name: "negative durations are dropped silently",
			args: []string{fixture("negative_duration.json")},
			wantStdout: "Average time of flight = 04:00:00\n" +
				"90th percentile of flight time = 04:00:00\n",
		},
		{
			name: "negative durations are kept with --include-negative",
			args: []string{"--include-negative", fixture("negative_duration.json")},
			wantStdout: "Average time of flight = 01:00:00\n" +
				"90th percentile of flight time = 22:00:00\n",
		},
		{
			name: "comments are accepted",
			args: []string{fixture("commented.jsonc")},
			wantStdout: "Average time of flight = 01:00:00\n" +
				"90th percentile of flight time = 01:00:00\n",
		},
		{
			name:       "trailing comma after the tickets array",
			args:       []string{fixture("trailing_comma_object.json")},
			wantStderr: "Wrong syntax in input file: invalid character '}' looking for beginning of object key string\n",
		},
		{
			name:       "trailing comma after the last ticket",
			args:       []string{fixture("trailing_comma_array.json")},
			wantStderr: "Wrong syntax in input file: invalid character ']' looking for beginning of value\n",
		},
		{
			name: "percentile flag",
			args: []string{"--percentile", "50", fixture("many_tickets.json")},
			wantStdout: "Average time of flight = 05:30:00\n" +
				"50th percentile of flight time = 05:00:00\n",
		},
		{
			name:       "route flags",
			args:       []string{"--origin", "ufa", "-d", "tlv", fixture("mixed_tickets.json")},
			wantStdout: "Average time of flight = 01:00:00\n" + "90th percentile of flight time = 01:00:00\n",
			wantStderr: "Ticket number 2 is wrong\n" +
				"Ticket number 3 is wrong\n" +
				"Ticket number 4 is wrong\n",
		},
		{
			name: "spanish messages",
			args: []string{"--lang", "es", fixture("under_a_day.json")},
			wantStdout: "Tiempo promedio de vuelo = 22:59:00\n" +
				"Percentil 90 del tiempo de vuelo = 22:59:00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := runReport(t, tt.args...)

			// Assert
			require.NoError(t, got.err)
			assert.Equal(t, tt.wantStdout, got.stdout)
			assert.Equal(t, tt.wantStderr, got.stderr)
		})
	}
}

func TestReportCommand_InputPath(t *testing.T) {
	t.Run("should report a missing file", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "missing.json")

		// Act
		got := runReport(t, path)

		// Assert
		require.NoError(t, got.err)
		assert.Empty(t, got.stdout)
		assert.Equal(t, "Cannot open input file: open "+path+": no such file or directory\n", got.stderr)
	})

	t.Run("should report a directory as an open error", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()

		// Act
		got := runReport(t, dir)

		// Assert
		require.NoError(t, got.err)
		assert.Empty(t, got.stdout)
		assert.Equal(t, "Cannot open input file: open "+dir+": is a directory\n", got.stderr)
	})

	t.Run("should use the configured file without arguments", func(t *testing.T) {
		// Arrange
		cfg := config.Default()
		cfg.InputPath = fixture("under_a_day.json")
		cmd, out, errOut := newRootCommand(t, cfg)

		// Act
		err := cmd.Run(context.Background(), []string{"flighttime"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Average time of flight = 22:59:00\n90th percentile of flight time = 22:59:00\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("should ignore arguments unless there is exactly one", func(t *testing.T) {
		// Arrange
		cfg := config.Default()
		cfg.InputPath = fixture("empty_tickets.json")
		cmd, out, _ := newRootCommand(t, cfg)

		// Act
		err := cmd.Run(context.Background(), []string{"flighttime", fixture("under_a_day.json"), fixture("one_day.json")})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "No tickets\n", out.String())
	})
}

func TestReportCommand_Misuse(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "percentile out of range", args: []string{"--percentile", "101", fixture("one_day.json")}},
		{name: "malformed route", args: []string{"--origin", "VLADIVOSTOK", fixture("one_day.json")}},
		{name: "unknown flag", args: []string{"--median", fixture("one_day.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := runReport(t, tt.args...)

			// Assert
			assert.Error(t, got.err)
			assert.NotContains(t, got.stdout, "Average time of flight")
		})
	}
}

func TestReportCommand_Verbose(t *testing.T) {
	// Act
	got := runReport(t, "--verbose", fixture("under_a_day.json"))

	// Assert
	require.NoError(t, got.err)
	assert.Equal(t, "Average time of flight = 22:59:00\n90th percentile of flight time = 22:59:00\n", got.stdout)
	assert.Contains(t, got.stderr, "processing tickets")
	assert.Contains(t, got.stderr, "tickets processed")
	assert.Contains(t, got.stderr, "run_id=")
}

func TestReportCommand_ErrorLineHasNoColor(t *testing.T) {
	// Arrange
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })
	path := filepath.Join(t.TempDir(), "absent.json")

	// Act
	got := runReport(t, path)

	// Assert
	require.NoError(t, got.err)
	assert.Equal(t, "Cannot open input file: open "+path+": no such file or directory\n", got.stderr)
	assert.NotContains(t, got.stderr, "\x1b[")
}

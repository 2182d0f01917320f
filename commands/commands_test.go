package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/anchorgui/logging"
	"github.com/OpticalFlyer/anchorgui/ui"
)

func run(t *testing.T, runWindow WindowRunner, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCapture(t, runWindow, args...)
	return out, err
}

// runCapture runs the command tree and returns what it wrote to stdout and stderr.
func runCapture(t *testing.T, runWindow WindowRunner, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(EnvConfig, "")

	var out, errOut bytes.Buffer
	cmd := Root("test", runWindow)
	cmd.Writer = &out
	cmd.ErrWriter = &errOut

	err := cmd.Run(context.Background(), append([]string{"anchorgui"}, args...))
	return out.String(), errOut.String(), err
}

func noWindow(context.Context, Session) error { return nil }

func TestPositions(t *testing.T) {
	out, err := run(t, noWindow, "positions", "--width", "700")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, []string{"ID", "X", "Y"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"menu", "645", "175"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"performance-graph", "645", "15"}, strings.Fields(lines[5]))
}

func TestPositionsJSON(t *testing.T) {
	out, err := run(t, noWindow, "positions", "--json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var first positionLine
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, positionLine{ID: "menu", X: 745, Y: 175}, first)
}

func TestProbe(t *testing.T) {
	out, err := run(t, noWindow, "probe", "move:760,180", "press", "move:0,0", "release")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "consumed=false")
	assert.Contains(t, lines[1], "consumed=true pressed=- released=- events=[]")
	// Leaving the button while held releases it.
	assert.Contains(t, lines[3], "released=menu events=[menu:released]")
}

func TestProbeJSON(t *testing.T) {
	out, err := run(t, noWindow, "probe", "--json", "move:760,180", "press", "release")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var results []resultLine
	for dec.More() {
		var line resultLine
		require.NoError(t, dec.Decode(&line))
		results = append(results, line)
	}
	require.Len(t, results, 3)
	assert.Equal(t, "press", results[1].Sample)
	require.NotNil(t, results[2].Released)
	assert.Equal(t, "menu", *results[2].Released)
	assert.Equal(t, []eventLine{{ID: "menu", State: "released"}}, results[2].Events)
}

func TestProbeBadSample(t *testing.T) {
	_, err := run(t, noWindow, "probe", "move:1")
	assert.ErrorIs(t, err, ErrBadSample)
}

func TestParseSamples(t *testing.T) {
	got, err := ParseSamples([]string{"move:10, 20", "PRESS", "release"})
	require.NoError(t, err)
	assert.Equal(t, []ui.PointerEvent{ui.Moved(10, 20), ui.Pressed(), ui.Released()}, got)

	for _, bad := range []string{"click", "move:-1,2", "move:a,b", "move:1"} {
		_, err := ParseSamples([]string{bad})
		assert.ErrorIs(t, err, ErrBadSample, bad)
	}
}

func TestRunPassesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yml")
	layout := "window: {width: 320, height: 200}\nanchors:\n  - align: center\n    node: {rect: {id: a, width: 10, height: 10}}\n"
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o644))

	var got Session
	capture := func(_ context.Context, s Session) error {
		got = s
		return nil
	}

	for _, args := range [][]string{{"--config", path, "run"}, {"--config", path}} {
		got = Session{}
		_, err := run(t, capture, args...)
		require.NoError(t, err, args)
		assert.Equal(t, path, got.Path)
		require.NotNil(t, got.Doc)
		assert.Equal(t, uint32(320), got.Doc.Window.Width)
		assert.NotNil(t, got.Logger)
	}
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, noWindow, "--config", filepath.Join(t.TempDir(), "missing.yml"), "positions")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogFlagsBeatEnv(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "error")
	t.Setenv(logging.EnvLogFormat, "json")

	_, stderr, err := runCapture(t, noWindow, "--log-level", "debug", "--log-format", "text", "positions")
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="gui resized"`)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "debug")

	_, stderr, err := runCapture(t, noWindow, "positions")
	require.NoError(t, err)
	assert.Contains(t, stderr, "gui resized")
}

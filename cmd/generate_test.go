package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleAnalysisJSON = `{"bpm": 120, "duration": 10, "onsets": [0.09, 0.11, 0.205, 0.4, 0.77, 0.78, 1.6]}`

func writeFile(t *testing.T, path string, body string) {
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.json")
	output := filepath.Join(dir, "chart.json")
	meta := filepath.Join(dir, "meta.json")
	writeFile(t, input, exampleAnalysisJSON)

	res, err := GenerateFile(input, output, meta, chart.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, res.NumFiltered)

	c, err := chart.ReadFile(output)
	require.NoError(t, err)
	assert.Len(t, c.StrumLines[0].Notes, 4)
	assert.FileExists(t, meta)
}

func TestGenerateFileFailsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.json")
	output := filepath.Join(dir, "chart.json")
	writeFile(t, input, `{"bpm": -1, "duration": 10, "onsets": [1]}`)

	_, err := GenerateFile(input, output, "", chart.DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrInvalidTempo)
	assert.NoFileExists(t, output)
}

func TestGenerateFileSurfacesAnalyzerFailure(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "chart.json")

	_, err := GenerateFile(filepath.Join(dir, "missing.mid"), output, "", chart.DefaultOptions())
	assert.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestBatch(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "charts")
	writeFile(t, filepath.Join(in, "a.json"), exampleAnalysisJSON)
	writeFile(t, filepath.Join(in, "b.json"), `{"bpm": 100, "duration": 30, "onsets": [1, 2, 3]}`)
	writeFile(t, filepath.Join(in, "broken.json"), `{"bpm": 0}`)
	writeFile(t, filepath.Join(in, "notes.txt"), "ignored")

	written, err := Batch(in, out, 0, 2, chart.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(out, "a.chart.json"),
		filepath.Join(out, "b.chart.json"),
	}, written)

	r, err := analyzeCharts(out)
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.numFiles)
	assert.Equal(t, uint64(7), sumNotes(r))
}

func TestBatchKeepsSameNamedInputsApart(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, os.MkdirAll(filepath.Join(in, "x"), 0777))
	require.NoError(t, os.MkdirAll(filepath.Join(in, "y"), 0777))
	writeFile(t, filepath.Join(in, "x", "song.json"), exampleAnalysisJSON)
	writeFile(t, filepath.Join(in, "y", "song.json"), `{"bpm": 100, "duration": 30, "onsets": [1, 2, 3]}`)
	writeFile(t, filepath.Join(in, "song.json"), exampleAnalysisJSON)
	writeFile(t, filepath.Join(in, "song.mid"), "not reached")

	written, err := Batch(in, out, 0, 4, chart.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(out, "song.chart.json"),
		filepath.Join(out, "x_song.chart.json"),
		filepath.Join(out, "y_song.chart.json"),
	}, written)

	x, err := chart.ReadFile(filepath.Join(out, "x_song.chart.json"))
	require.NoError(t, err)
	y, err := chart.ReadFile(filepath.Join(out, "y_song.chart.json"))
	require.NoError(t, err)
	assert.Len(t, x.StrumLines[0].Notes, 4)
	assert.Len(t, y.StrumLines[0].Notes, 3)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func sumNotes(r chartsReport) uint64 {
	var total uint64
	for i := range r.enemyNotes {
		total += uint64(r.enemyNotes[i] + r.playerNotes[i])
	}
	return total
}

func TestWatchRegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.json")
	output := filepath.Join(dir, "chart.json")
	writeFile(t, input, exampleAnalysisJSON)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- Watch(ctx, input, output, chart.DefaultOptions(), 10*time.Millisecond, 20*time.Millisecond)
	}()

	countNotes := func() int {
		c, err := chart.ReadFile(output)
		if err != nil {
			return -1
		}
		return len(c.StrumLines[0].Notes) + len(c.StrumLines[1].Notes)
	}
	require.Eventually(t, func() bool { return countNotes() == 4 }, 5*time.Second, 10*time.Millisecond)

	writeFile(t, input, `{"bpm": 120, "duration": 10, "onsets": [1, 2]}`)
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(input, later, later))
	require.Eventually(t, func() bool { return countNotes() == 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchDropsPendingRegenerateOnCancel(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.json")
	output := filepath.Join(dir, "chart.json")
	writeFile(t, input, exampleAnalysisJSON)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	settle := 50 * time.Millisecond
	go func() {
		done <- Watch(ctx, input, output, chart.DefaultOptions(), 5*time.Millisecond, settle)
	}()
	require.Eventually(t, func() bool {
		_, err := os.Stat(output)
		return err == nil
	}, 5*time.Second, 5*time.Millisecond)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(input, later, later))
	// let the ticker see the change and schedule a regenerate
	time.Sleep(20 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	require.NoError(t, os.Remove(output))
	time.Sleep(3 * settle)
	assert.NoFileExists(t, output)
}

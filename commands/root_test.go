package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-shealth-tcx/internal/presentation/formatter"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/test/path",
			expected: func(home string) string {
				return filepath.Join(home, "test/path")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path",
			expected: func(home string) string {
				return "/absolute/path"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected(home), expandPath(tt.input))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, ensureDir(testDir))
	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	assert.NoError(t, ensureDir(testDir))
}

func TestResolveOutputDir(t *testing.T) {
	exportDir, outputDir = "/data/export", ""
	assert.Equal(t, filepath.Join("/data/export", "tcx_files"), resolveOutputDir())

	outputDir = "/tmp/out"
	assert.Equal(t, "/tmp/out", resolveOutputDir())

	exportDir, outputDir = defaultExportDir, ""
}

// writeExport lays out a minimal Samsung Health export with one exercise.
func writeExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	csv := "com.samsung.shealth.exercise,6313007,15\n" +
		"com.samsung.health.exercise.exercise_type,com.samsung.health.exercise.live_data,com.samsung.health.exercise.start_time,com.samsung.health.exercise.duration,total_calorie,com.samsung.health.exercise.mean_heart_rate,com.samsung.health.exercise.max_heart_rate,\n" +
		"15002,f00d.live_data.json,2023-06-01 08:15:30.500000,1800,450.7,120.2,165.9,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "com.samsung.shealth.exercise.3.csv"), []byte(csv), 0644))

	detailDir := filepath.Join(dir, "jsons", "com.samsung.shealth.exercise", "f")
	require.NoError(t, os.MkdirAll(detailDir, 0755))
	detail := `[{"start_time": 1685607330500, "heart_rate": 118}, {"start_time": 1685607331500}, {"start_time": 1685607332500, "heart_rate": 121}]`
	require.NoError(t, os.WriteFile(filepath.Join(detailDir, "f00d.live_data.json"), []byte(detail), 0644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exportDir, outputDir, timezone, workers = defaultExportDir, "", "Local", 1
	outputFormat, verifyFormat, logFormat = "table", "table", "text"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "app.log")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandConverts(t *testing.T) {
	dir := writeExport(t)

	out, err := execute(t, "--dir", dir, "--timezone", "UTC", "-o", "json")
	require.NoError(t, err)

	var records []formatter.Record
	require.NoError(t, sonic.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "f00d.live_data.tcx", records[0].Output)
	assert.Equal(t, 450, records[0].Calories)
	assert.Equal(t, 2, records[0].Trackpoints)

	assert.FileExists(t, filepath.Join(dir, "tcx_files", "f00d.live_data.tcx"))
}

func TestRootCommandTableReport(t *testing.T) {
	dir := writeExport(t)
	out := filepath.Join(t.TempDir(), "tcx")

	stdout, err := execute(t, "--dir", dir, "--out", out, "--timezone", "UTC")
	require.NoError(t, err)
	assert.Contains(t, stdout, "f00d.live_data.tcx")
	assert.Contains(t, stdout, "Wrote 1 TCX files to "+out)
}

func TestRootCommandNoExport(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summary export files found")
}

func TestRootCommandInvalidFormat(t *testing.T) {
	_, err := execute(t, "--dir", writeExport(t), "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestVerifyCommand(t *testing.T) {
	dir := writeExport(t)
	_, err := execute(t, "--dir", dir, "--timezone", "UTC", "-o", "none")
	require.NoError(t, err)

	out, err := execute(t, "verify", "--dir", dir, "-o", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "f00d.live_data.tcx,,2023-06-01T08:15:30Z,1800,450,120,165,2", lines[1])
}

func TestVerifyCommandMalformed(t *testing.T) {
	dir := t.TempDir()
	tcxDir := filepath.Join(dir, "tcx_files")
	require.NoError(t, os.MkdirAll(tcxDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tcxDir, "bad.tcx"), []byte("<TrainingCenterDatabase>"), 0644))

	_, err := execute(t, "verify", "--dir", dir)
	assert.Error(t, err)
}

func TestVerifyCommandEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tcx_files"), 0755))

	_, err := execute(t, "verify", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .tcx files found")
}

func TestRootCommandLogFormat(t *testing.T) {
	dir := writeExport(t)

	_, err := execute(t, "--dir", dir, "--timezone", "UTC", "-o", "none", "--log-format", "json")
	require.NoError(t, err)

	_, err = execute(t, "--dir", dir, "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

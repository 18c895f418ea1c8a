package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/toolbelt/internal/registry"
)

// useConfig points the command line at a config file whose directories all
// live under a temp dir, and returns the output directory.
func useConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0o750))
	cfg := "data_dir: " + filepath.Join(dir, "data") + "\n" +
		"output_dir: " + out + "\n" +
		"log_file: " + filepath.Join(dir, "toolbelt.log") + "\n" +
		"base_url: https://tools.example.com\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	configPath = path
	t.Cleanup(func() {
		configPath = ""
		runSets, runFiles, runSave = nil, nil, false
	})
	return out
}

func testCommand(stdin string) (*cobra.Command, *bytes.Buffer) {
	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetIn(strings.NewReader(stdin))
	c.SetContext(context.Background())
	return c, &out
}

func TestParseSets(t *testing.T) {
	got, err := parseSets([]string{"count=3", " mode =decode", "text=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"count": "3", "mode": "decode", "text": "a=b"}, got)

	_, err = parseSets([]string{"count"})
	require.Error(t, err)
	_, err = parseSets([]string{"=3"})
	require.Error(t, err)
}

func TestRun_UUIDs(t *testing.T) {
	useConfig(t)
	runSets = []string{"count=3"}

	c, out := testCommand("")
	require.NoError(t, runTool(c, []string{"uuid-generator"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		_, err := uuid.Parse(l)
		assert.NoError(t, err, l)
	}
}

func TestRun_StdinFillsPrimaryField(t *testing.T) {
	dir := useConfig(t)

	c, out := testCommand("hello\n")
	require.NoError(t, runTool(c, []string{"base64-encoder"}))
	assert.Contains(t, out.String(), "aGVsbG8=")

	data, err := os.ReadFile(filepath.Join(dir, "encoded.txt"))
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", string(data))
}

func TestRun_SaveWritesTextDownload(t *testing.T) {
	dir := useConfig(t)
	runSets = []string{"count=2"}
	runSave = true

	c, out := testCommand("")
	require.NoError(t, runTool(c, []string{"uuid-generator"}))
	assert.Contains(t, out.String(), "Saved "+filepath.Join(dir, "uuids.txt"))
}

func TestRun_Errors(t *testing.T) {
	useConfig(t)

	c, _ := testCommand("")
	err := runTool(c, []string{"no-such-tool"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")

	err = runTool(c, []string{"hash-generator"})
	require.Error(t, err)
	assert.Equal(t, "Please enter text to hash", err.Error())

	runFiles = []string{"a.png"}
	err = runTool(c, []string{"uuid-generator"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not take files")
}

func TestWriteTable(t *testing.T) {
	var out bytes.Buffer
	writeTable(&out, registry.Filter(registry.All(), registry.Text, "uuid"))
	assert.Contains(t, out.String(), "uuid-generator")
	assert.Contains(t, out.String(), "Showing 1 tool")

	out.Reset()
	writeTable(&out, nil)
	assert.Equal(t, "No tools found matching your search.\n", out.String())
}

func TestWriteMarkdown(t *testing.T) {
	var out bytes.Buffer
	tools := registry.Filter(registry.All(), registry.File, "")
	require.NoError(t, writeMarkdown(&out, registry.File, tools))

	md := out.String()
	assert.Contains(t, md, "# toolbelt tools")
	assert.Contains(t, md, "## File Conversion")
	assert.Contains(t, md, "`pdf-to-word`")
	assert.NotContains(t, md, "`uuid-generator`")
	assert.Contains(t, md, "Showing 7 tools")
}

func TestToolSubcommands(t *testing.T) {
	for _, tool := range registry.All() {
		c, _, err := rootCmd.Find([]string{tool.ID})
		require.NoError(t, err, tool.ID)
		assert.Equal(t, tool.ID, c.Name())
		assert.Equal(t, string(tool.Category), c.GroupID)
	}
}

func TestSitemapAndRobots(t *testing.T) {
	useConfig(t)
	now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	c, _, err := rootCmd.Find([]string{"sitemap"})
	require.NoError(t, err)
	var out bytes.Buffer
	c.SetOut(&out)
	require.NoError(t, c.RunE(c, nil))
	assert.Contains(t, out.String(), "<loc>https://tools.example.com/tools/uuid-generator</loc>")
	assert.Equal(t, len(registry.All())+1, strings.Count(out.String(), "<url>"))

	c, _, err = rootCmd.Find([]string{"robots"})
	require.NoError(t, err)
	out.Reset()
	c.SetOut(&out)
	require.NoError(t, c.RunE(c, nil))
	assert.Contains(t, out.String(), "Sitemap: https://tools.example.com/sitemap.xml")
}

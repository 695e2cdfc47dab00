package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeeftor/perfscript/internal/utils"
	"github.com/jeeftor/perfscript/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// executeCmd runs a fresh command tree against a private config file
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "perfscript.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: error\n"), 0644))

	root := NewRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const typingScript = "%%project demo\n%%assertTimeout 30s\n%openFile Main.java\n%delayType 150|abc\n"

func TestRootHelp(t *testing.T) {
	stdout, _, err := executeCmd(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"parse", "validate", "duration", "view", "examples", "config", "version"} {
		assert.Contains(t, stdout, sub)
	}
}

func TestParseText(t *testing.T) {
	path := writeScript(t, t.TempDir(), "typing.ijperf", typingScript)

	stdout, _, err := executeCmd(t, "parse", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Performance script")
	assert.Contains(t, stdout, "demo")
	assert.Contains(t, stdout, "30s (30000 ms)")
	assert.Contains(t, stdout, "%openFile Main.java\n%delayType 150|abc\n")
	assert.NotContains(t, stdout, "%%project")
}

func TestParseJSON(t *testing.T) {
	path := writeScript(t, t.TempDir(), "typing.ijperf", typingScript)

	stdout, _, err := executeCmd(t, "parse", path, "--format", "json")
	require.NoError(t, err)

	var view struct {
		Source  string   `json:"source"`
		Project string   `json:"project"`
		Timeout int64    `json:"assertion_timeout_ms"`
		Content []string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, path, view.Source)
	assert.Equal(t, "demo", view.Project)
	assert.Equal(t, int64(30000), view.Timeout)
	assert.Equal(t, []string{"%openFile Main.java", "%delayType 150|abc"}, view.Content)
}

func TestParseDirectoryYAMLToFile(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.ijperf", "%%project alpha\n%%assertTimeout 2M\nbody\n")
	writeScript(t, dir, "b.ijperf", "%%project beta\nbody\n")
	writeScript(t, dir, "notes.md", "%%assertTimeout nope\n")
	out := filepath.Join(t.TempDir(), "build", "scripts.yaml")

	stdout, _, err := executeCmd(t, "parse", dir, "--format", "yaml", "--output", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var views []struct {
		Project string `yaml:"project"`
		Timeout int64  `yaml:"assertion_timeout_ms"`
	}
	require.NoError(t, yaml.Unmarshal(data, &views))
	require.Len(t, views, 2)
	assert.Equal(t, "alpha", views[0].Project)
	assert.Equal(t, int64(120000), views[0].Timeout)
	assert.Equal(t, "beta", views[1].Project)
	assert.Equal(t, int64(0), views[1].Timeout)
}

func TestParseInvalidDuration(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.ijperf", "%%project demo\n%%assertTimeout 5m\n")

	_, _, err := executeCmd(t, "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5m")
	assert.Equal(t, utils.ExitCodeInvalidScript, utils.ExitCode(err))
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := executeCmd(t, "parse", filepath.Join(t.TempDir(), "missing.ijperf"))
	require.Error(t, err)
	assert.Equal(t, utils.ExitCodeFileSystem, utils.ExitCode(err))
}

func TestParseUnknownFormat(t *testing.T) {
	path := writeScript(t, t.TempDir(), "typing.ijperf", typingScript)

	_, _, err := executeCmd(t, "parse", path, "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, utils.ExitCodeGeneral, utils.ExitCode(err))
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeScript(t, dir, "good.ijperf", typingScript)
	typo := writeScript(t, dir, "typo.ijperf", "%%project demo\n%%assertTimout 30s\n%openFile Main.java\n")

	t.Run("clean script passes", func(t *testing.T) {
		_, _, err := executeCmd(t, "validate", good)
		require.NoError(t, err)
	})

	t.Run("warnings pass without strict", func(t *testing.T) {
		stdout, _, err := executeCmd(t, "validate", typo)
		require.NoError(t, err)
		assert.Contains(t, stdout, "%%assertTimeout")
	})

	t.Run("warnings fail with strict", func(t *testing.T) {
		_, _, err := executeCmd(t, "validate", good, typo, "--strict")
		require.Error(t, err)
		assert.Equal(t, utils.ExitCodeValidation, utils.ExitCode(err))
		assert.Contains(t, err.Error(), "1 of 2")
	})

	t.Run("parse errors are reported after every file", func(t *testing.T) {
		bad := writeScript(t, dir, "bad.ijperf", "%%assertTimeout soon\n")
		stdout, _, err := executeCmd(t, "validate", bad, good, "--format", "json")
		require.Error(t, err)
		assert.Equal(t, utils.ExitCodeInvalidScript, utils.ExitCode(err))
		assert.Contains(t, stdout, `"valid": true`)
	})
}

func TestDuration(t *testing.T) {
	stdout, _, err := executeCmd(t, "duration", "500ms", "30s", "2M", "1H", "750")
	require.NoError(t, err)
	assert.Equal(t, "500ms\t500\n30s\t30000\n2M\t120000\n1H\t3600000\n750\t750\n", stdout)

	_, _, err = executeCmd(t, "duration", "10h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10h")
	assert.Equal(t, utils.ExitCodeInvalidScript, utils.ExitCode(err))
}

func TestViewFallsBackToText(t *testing.T) {
	path := writeScript(t, t.TempDir(), "typing.ijperf", typingScript)

	stdout, _, err := executeCmd(t, "view", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1  %openFile Main.java")
	assert.Contains(t, stdout, "2  %delayType 150|abc")
}

func TestExamples(t *testing.T) {
	stdout, _, err := executeCmd(t, "examples", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "typing.ijperf")

	stdout, _, err = executeCmd(t, "examples", "show", "typing.ijperf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "%%project sample-java\n"))

	_, _, err = executeCmd(t, "examples", "show", "missing.ijperf")
	require.Error(t, err)

	dir := t.TempDir()
	_, _, err = executeCmd(t, "examples", "extract", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "typing.ijperf"))

	_, _, err = executeCmd(t, "examples", "extract", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = executeCmd(t, "examples", "extract", dir, "--force")
	require.NoError(t, err)
}

func TestExtractedExamplesParse(t *testing.T) {
	dir := t.TempDir()
	_, _, err := executeCmd(t, "examples", "extract", dir)
	require.NoError(t, err)

	_, _, err = executeCmd(t, "validate", dir, "--strict")
	require.NoError(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".perfscript.yaml")

	_, _, err := executeCmd(t, "config", "init", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Configuration Priority")

	var cfg fileConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Color)
	assert.Equal(t, 1024*1024, cfg.MaxLineBytes)

	_, _, err = executeCmd(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := executeCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "perfscript.yaml")
	assert.Contains(t, stdout, "log_level:      error")
	assert.Contains(t, stdout, "max_line_bytes: 1048576")
}

func TestConfigFormatDefault(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "perfscript.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\n"), 0644))
	path := writeScript(t, t.TempDir(), "typing.ijperf", typingScript)

	root := NewRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfg, "parse", path})

	require.NoError(t, root.Execute())
	assert.True(t, json.Valid(stdout.Bytes()))
}

func TestVersionShort(t *testing.T) {
	stdout, _, err := executeCmd(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, buildVersion+"\n", stdout)
}

func TestGetFormattedBuildTime(t *testing.T) {
	original := buildTime
	defer func() { buildTime = original }()

	buildTime = "unknown"
	assert.Equal(t, "unknown", GetFormattedBuildTime())

	buildTime = "2024-03-01T10:00:00Z"
	assert.Equal(t, "2024-03-01 10:00:00 UTC", GetFormattedBuildTime())

	buildTime = "0"
	assert.Equal(t, "1970-01-01 00:00:00 UTC", GetFormattedBuildTime())

	buildTime = "yesterday"
	assert.Equal(t, "yesterday", GetFormattedBuildTime())
}

func TestValidateSeveralFilesStructured(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.ijperf", typingScript)
	b := writeScript(t, dir, "b.ijperf", "%%project demo\n%%assertTimout 30s\nbody\n")

	t.Run("json", func(t *testing.T) {
		stdout, _, err := executeCmd(t, "validate", a, b, "--format", "json")
		require.NoError(t, err)

		var results []validation.Result
		require.NoError(t, json.Unmarshal([]byte(stdout), &results))
		require.Len(t, results, 2)
		assert.Equal(t, a, results[0].Source)
		assert.Equal(t, b, results[1].Source)
		assert.NotEmpty(t, results[1].Warnings)
	})

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := executeCmd(t, "validate", a, b, "--format", "yaml")
		require.NoError(t, err)

		var results []validation.Result
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &results))
		require.Len(t, results, 2)
		assert.Equal(t, b, results[1].Source)
	})
}

func TestViewRejectsDirectory(t *testing.T) {
	_, _, err := executeCmd(t, "view", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestEmptyDirectoryWarns(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := executeCmd(t, "parse", dir, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
	assert.Contains(t, stderr, "no script files found")

	_, stderr, err = executeCmd(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "no script files found")
}

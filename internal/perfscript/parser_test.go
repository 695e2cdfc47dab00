package perfscript

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinesEndToEnd(t *testing.T) {
	script, err := ParseLines([]string{
		"%%project demo",
		"%%assertTimeout 30s",
		"open app",
		"click button",
	})
	require.NoError(t, err)

	assert.Equal(t, "demo", script.ProjectName())
	assert.Equal(t, int64(30000), script.AssertionTimeoutMillis())
	assert.Equal(t, 30*time.Second, script.AssertionTimeout())
	assert.Equal(t, []string{"open app", "click button"}, script.Content())
	assert.Equal(t, "open app\nclick button", script.Body())
}

func TestParseWithoutDirectives(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty input", lines: []string{}},
		{name: "single line", lines: []string{"%startProfile"}},
		{name: "blank lines kept", lines: []string{"", "  ", "%openFile Main.java", ""}},
		{name: "percent commands", lines: []string{"%delayType 150|Hello", "%doComplete", "%stopProfile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := ParseLines(tt.lines)
			require.NoError(t, err)

			assert.Empty(t, script.ProjectName())
			assert.Zero(t, script.AssertionTimeoutMillis())
			assert.False(t, script.HasAssertionTimeout())
			assert.Equal(t, len(tt.lines), script.LineCount())
			if len(tt.lines) > 0 {
				assert.Equal(t, tt.lines, script.Content())
			}
		})
	}
}

func TestParseAssertTimeoutOnly(t *testing.T) {
	tests := []struct {
		literal string
		want    int64
	}{
		{"500ms", 500},
		{"5s", 5000},
		{"2M", 120000},
		{"1H", 3600000},
		{"750", 750},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			script, err := ParseLines([]string{"%%assertTimeout " + tt.literal})
			require.NoError(t, err)
			assert.Equal(t, tt.want, script.AssertionTimeoutMillis())
			assert.Empty(t, script.Content())
		})
	}
}

func TestParseLastDirectiveWins(t *testing.T) {
	script, err := ParseLines([]string{
		"%%project A",
		"%%assertTimeout 1s",
		"%%project B",
		"%%assertTimeout 2M",
	})
	require.NoError(t, err)

	assert.Equal(t, "B", script.ProjectName())
	assert.Equal(t, int64(120000), script.AssertionTimeoutMillis())
}

func TestParsePreservesContentOrder(t *testing.T) {
	script, err := ParseLines([]string{
		"first",
		"%%project demo",
		"second",
		"%%assertTimeout 10",
		"third",
		"%%project again",
		"fourth",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, script.Content())
}

func TestParseMarkerAnywhereInLine(t *testing.T) {
	script, err := ParseLines([]string{
		"  %%project indented",
		"# run %%assertTimeout 3s",
		"plain",
	})
	require.NoError(t, err)

	assert.Equal(t, "indented", script.ProjectName())
	assert.Equal(t, int64(3000), script.AssertionTimeoutMillis())
	assert.Equal(t, []string{"plain"}, script.Content())
}

func TestParseProjectValueVerbatim(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "simple", line: "%%project demo", want: "demo"},
		{name: "spaces kept", line: "%%project my project ", want: "my project "},
		{name: "only first separator removed", line: "%%project  two", want: " two"},
		{name: "no separator keeps line", line: "%%project", want: "%%project"},
		{name: "empty value", line: "%%project ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := ParseLines([]string{tt.line})
			require.NoError(t, err)
			assert.Equal(t, tt.want, script.ProjectName())
		})
	}
}

func TestParseInvalidDuration(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		value string
	}{
		{name: "word", line: "%%assertTimeout banana", value: "banana"},
		{name: "blank", line: "%%assertTimeout ", value: ""},
		{name: "missing value", line: "%%assertTimeout", value: "%%assertTimeout"},
		{name: "trailing space after unit", line: "%%assertTimeout 30s ", value: "30s "},
		{name: "negative", line: "%%assertTimeout -5s", value: "-5s"},
		{name: "lowercase minutes", line: "%%assertTimeout 2m", value: "2m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := ParseLines([]string{"%%project demo", tt.line, "content"})
			require.Error(t, err)
			assert.Nil(t, script)
			assert.True(t, errors.Is(err, ErrInvalidDuration))

			var durErr *InvalidDurationError
			require.True(t, errors.As(err, &durErr))
			assert.Equal(t, tt.value, durErr.Value)
			assert.Equal(t, 2, durErr.Line)
			assert.Contains(t, err.Error(), "'"+tt.value+"'")
		})
	}
}

func TestParseReader(t *testing.T) {
	input := "%%project demo\r\n%%assertTimeout 1H\r\nopen app\r\n\r\nclick button\n"

	script, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "demo", script.ProjectName())
	assert.Equal(t, int64(3600000), script.AssertionTimeoutMillis())
	assert.Equal(t, []string{"open app", "", "click button"}, script.Content())
	assert.Empty(t, script.Source())
}

func TestParseReaderLineTooLong(t *testing.T) {
	parser := NewParser(WithMaxLineBytes(16))

	_, err := parser.Parse(strings.NewReader("short\n" + strings.Repeat("x", 64) + "\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidDuration))
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typing.ijperf")
	content := "%%project demo\n%%assertTimeout 30s\n%openFile src/Main.java\n%delayType 150|Hello\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	script, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, script.Source())
	assert.Equal(t, "demo", script.ProjectName())
	assert.Equal(t, []string{"%openFile src/Main.java", "%delayType 150|Hello"}, script.Content())
}

func TestParseFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "missing.ijperf"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid duration names file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.ijperf")
		require.NoError(t, os.WriteFile(path, []byte("%%assertTimeout banana\n"), 0644))

		script, err := ParseFile(path)
		require.Error(t, err)
		assert.Nil(t, script)
		assert.True(t, errors.Is(err, ErrInvalidDuration))
		assert.Contains(t, err.Error(), path)
		assert.Contains(t, err.Error(), "banana")
	})
}

func TestScriptIsImmutable(t *testing.T) {
	lines := []string{"one", "two"}
	script, err := ParseLines(lines)
	require.NoError(t, err)

	lines[0] = "changed"
	content := script.Content()
	content[1] = "changed"

	assert.Equal(t, []string{"one", "two"}, script.Content())
}

func TestScriptView(t *testing.T) {
	script, err := ParseLines([]string{"%%project demo", "%%assertTimeout 250ms", "body"})
	require.NoError(t, err)

	view := script.View()
	assert.Equal(t, ScriptView{
		Project:                "demo",
		AssertionTimeoutMillis: 250,
		Content:                []string{"body"},
	}, view)
}

func TestParserReuse(t *testing.T) {
	parser := NewParser()

	first, err := parser.ParseLines([]string{"%%project A", "x"})
	require.NoError(t, err)
	second, err := parser.ParseLines([]string{"y"})
	require.NoError(t, err)

	assert.Equal(t, "A", first.ProjectName())
	assert.Empty(t, second.ProjectName())
	assert.Equal(t, []string{"y"}, second.Content())
}

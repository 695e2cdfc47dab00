package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jeeftor/perfscript/internal/perfscript"
	"gopkg.in/yaml.v3"
)

// WriteScript renders a parsed script in the requested format
func WriteScript(w io.Writer, script *perfscript.Script, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeScriptText(w, script, opts)
	case FormatTable:
		return writeScriptTable(w, script)
	case FormatJSON:
		return writeJSON(w, script.View())
	case FormatYAML:
		return writeYAML(w, script.View())
	default:
		return fmt.Errorf("unsupported format '%s'", format)
	}
}

// WriteScripts renders several scripts. JSON and YAML emit a single list so
// the output stays one document; text and table separate scripts by a blank
// line.
func WriteScripts(w io.Writer, scripts []*perfscript.Script, format Format, opts Options) error {
	if len(scripts) == 1 {
		return WriteScript(w, scripts[0], format, opts)
	}

	switch format {
	case FormatJSON, FormatYAML:
		views := make([]perfscript.ScriptView, len(scripts))
		for i, s := range scripts {
			views[i] = s.View()
		}
		if format == FormatJSON {
			return writeJSON(w, views)
		}
		return writeYAML(w, views)
	}

	for i, s := range scripts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteScript(w, s, format, opts); err != nil {
			return err
		}
	}
	return nil
}

// TimeoutLabel describes a script's assertion timeout for humans
func TimeoutLabel(script *perfscript.Script) string {
	if !script.HasAssertionTimeout() {
		return "(unset)"
	}
	return fmt.Sprintf("%s (%d ms)", perfscript.FormatDuration(script.AssertionTimeoutMillis()), script.AssertionTimeoutMillis())
}

// ProjectLabel describes a script's project for humans
func ProjectLabel(script *perfscript.Script) string {
	if script.ProjectName() == "" {
		return "(none)"
	}
	return script.ProjectName()
}

func writeScriptText(w io.Writer, script *perfscript.Script, opts Options) error {
	p := newPainter(opts)
	var b strings.Builder

	b.WriteString(p.paint(p.set.Title, "Performance script"))
	b.WriteString("\n")
	if script.Source() != "" {
		writeField(&b, p, "Source", script.Source())
	}
	writeField(&b, p, "Project", ProjectLabel(script))
	writeField(&b, p, "Timeout", TimeoutLabel(script))
	writeField(&b, p, "Lines", strconv.Itoa(script.LineCount()))
	b.WriteString("\n")
	b.WriteString(Body(script, opts))

	_, err := io.WriteString(w, b.String())
	return err
}

// Body renders the content lines, one per output line
func Body(script *perfscript.Script, opts Options) string {
	p := newPainter(opts)
	content := script.Content()
	width := len(strconv.Itoa(len(content)))

	var b strings.Builder
	for i, line := range content {
		if opts.LineNumbers {
			b.WriteString(p.paint(p.set.LineNumber, fmt.Sprintf("%*d", width, i+1)))
			b.WriteString("  ")
		}
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			b.WriteString(p.paint(p.set.Command, line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, p painter, label, value string) {
	b.WriteString(p.paint(p.set.Label, fmt.Sprintf("%-8s", label+":")))
	b.WriteString(" ")
	b.WriteString(p.paint(p.set.Value, value))
	b.WriteString("\n")
}

func writeScriptTable(w io.Writer, script *perfscript.Script) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("%s · %s", ProjectLabel(script), TimeoutLabel(script)))
	tw.AppendHeader(table.Row{"#", "Command"})
	for i, line := range script.Content() {
		tw.AppendRow(table.Row{i + 1, line})
	}

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

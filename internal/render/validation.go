package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jeeftor/perfscript/internal/validation"
)

// WriteValidation renders a validation result in the requested format
func WriteValidation(w io.Writer, result *validation.Result, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeValidationText(w, result, opts)
	case FormatTable:
		return writeValidationTable(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	default:
		return fmt.Errorf("unsupported format '%s'", format)
	}
}

// WriteValidations renders several results. json and yaml produce one list,
// text and table separate results with a blank line.
func WriteValidations(w io.Writer, results []*validation.Result, format Format, opts Options) error {
	if len(results) == 1 {
		return WriteValidation(w, results[0], format, opts)
	}

	switch format {
	case FormatJSON, FormatYAML:
		list := append([]*validation.Result{}, results...)
		if format == FormatJSON {
			return writeJSON(w, list)
		}
		return writeYAML(w, list)
	}

	for i, result := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteValidation(w, result, format, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeValidationText(w io.Writer, result *validation.Result, opts Options) error {
	p := newPainter(opts)
	name := result.Source
	if name == "" {
		name = "script"
	}

	var b strings.Builder
	switch {
	case !result.Valid:
		fmt.Fprintf(&b, "%s %s: %s\n", ErrorIcon, name, p.paint(p.set.Error, "invalid"))
	case len(result.Warnings) > 0:
		fmt.Fprintf(&b, "%s %s: %s\n", WarningIcon, name, p.paint(p.set.Warning, fmt.Sprintf("valid with %d warning(s)", len(result.Warnings))))
	default:
		fmt.Fprintf(&b, "%s %s: %s\n", SuccessIcon, name, p.paint(p.set.Success, "valid"))
	}

	for _, issue := range result.Errors {
		fmt.Fprintf(&b, "  %s %s\n", p.paint(p.set.Error, "error:"), issue)
	}
	for _, issue := range result.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", p.paint(p.set.Warning, "warning:"), issue)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeValidationTable(w io.Writer, result *validation.Result) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if result.Source != "" {
		tw.SetTitle(result.Source)
	}
	tw.AppendHeader(table.Row{"Severity", "Rule", "Line", "Message", "Suggestion"})

	issues := append(append([]validation.Issue{}, result.Errors...), result.Warnings...)
	for _, issue := range issues {
		line := ""
		if issue.Line > 0 {
			line = fmt.Sprint(issue.Line)
		}
		tw.AppendRow(table.Row{issue.Severity, issue.Rule, line, issue.Message, issue.Suggestion})
	}

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

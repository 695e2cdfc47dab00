package validation

import (
	"fmt"
	"strings"

	"github.com/jeeftor/perfscript/internal/perfscript"
)

// Rule names reported in issues
const (
	RuleProjectMissing   = "project-missing"
	RuleProjectBlank     = "project-blank"
	RuleTimeoutMissing   = "timeout-missing"
	RuleEmptyBody        = "empty-body"
	RuleUnknownDirective = "unknown-directive"
)

// Severity of an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding. Line is the 1-based content line
// number, 0 for script-level findings.
type Issue struct {
	Severity   Severity `json:"severity" yaml:"severity"`
	Rule       string   `json:"rule" yaml:"rule"`
	Line       int      `json:"line,omitempty" yaml:"line,omitempty"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

func (i Issue) String() string {
	var b strings.Builder
	if i.Line > 0 {
		fmt.Fprintf(&b, "content line %d: ", i.Line)
	}
	fmt.Fprintf(&b, "%s (%s)", i.Message, i.Rule)
	if i.Suggestion != "" {
		fmt.Fprintf(&b, "; %s", i.Suggestion)
	}
	return b.String()
}

// Result holds the results of script validation
type Result struct {
	Source   string  `json:"source,omitempty" yaml:"source,omitempty"`
	Valid    bool    `json:"valid" yaml:"valid"`
	Errors   []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// AddError adds a validation error
func (r *Result) AddError(rule string, line int, message string, suggestion string) {
	r.Valid = false
	r.Errors = append(r.Errors, Issue{
		Severity:   SeverityError,
		Rule:       rule,
		Line:       line,
		Message:    message,
		Suggestion: suggestion,
	})
}

// AddWarning adds a validation warning
func (r *Result) AddWarning(rule string, line int, message string, suggestion string) {
	r.Warnings = append(r.Warnings, Issue{
		Severity:   SeverityWarning,
		Rule:       rule,
		Line:       line,
		Message:    message,
		Suggestion: suggestion,
	})
}

// Err folds the errors (and warnings when strict) into a single error
func (r *Result) Err(strict bool) error {
	issues := r.Errors
	if strict {
		issues = append(append([]Issue{}, r.Errors...), r.Warnings...)
	}
	if len(issues) == 0 {
		return nil
	}

	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.String()
	}
	prefix := "script"
	if r.Source != "" {
		prefix = r.Source
	}
	return fmt.Errorf("%s: %s", prefix, strings.Join(msgs, "; "))
}

// Validate lints a parsed script. It never changes how the script was
// parsed: lines that look like directives but are not recognised stay
// content and are only reported.
func Validate(script *perfscript.Script) *Result {
	result := &Result{Valid: true, Source: script.Source()}

	validateProject(script, result)
	validateTimeout(script, result)
	validateBody(script, result)

	return result
}

func validateProject(script *perfscript.Script, result *Result) {
	name := script.ProjectName()
	switch {
	case name == "":
		result.AddWarning(RuleProjectMissing, 0,
			"no project is set",
			fmt.Sprintf("add '%s <name>'", perfscript.ProjectDirective))
	case strings.TrimSpace(name) == "":
		result.AddError(RuleProjectBlank, 0,
			"project name is blank",
			fmt.Sprintf("write exactly one space after %s", perfscript.ProjectDirective))
	}
}

func validateTimeout(script *perfscript.Script, result *Result) {
	if !script.HasAssertionTimeout() {
		result.AddWarning(RuleTimeoutMissing, 0,
			"assertion timeout is zero or unset",
			fmt.Sprintf("add '%s 30s' or similar", perfscript.AssertTimeoutDirective))
	}
}

func validateBody(script *perfscript.Script, result *Result) {
	content := script.Content()
	if strings.TrimSpace(script.Body()) == "" {
		result.AddWarning(RuleEmptyBody, 0, "script has no commands", "")
	}

	for i, line := range content {
		word, ok := directiveWord(line)
		if !ok {
			continue
		}
		suggestion := ""
		if closest := closestDirective(word); closest != "" {
			suggestion = fmt.Sprintf("did you mean %s?", closest)
		}
		result.AddWarning(RuleUnknownDirective, i+1,
			fmt.Sprintf("unrecognised directive %s is treated as content", word),
			suggestion)
	}
}

// directiveWord returns the leading %%word of a line, if any
func directiveWord(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "%%") {
		return "", false
	}
	if fields := strings.Fields(trimmed); len(fields) > 0 {
		return fields[0], true
	}
	return "", false
}

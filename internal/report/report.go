// Package report models the multi-section analysis output. Sections are
// ordered and named with stable machine keys so downstream formatters can
// rely on the report shape; every pass always contributes its section, with
// explicit absence lines instead of omission.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind labels the report flavor.
const (
	KindNatal   = "natal"
	KindFortune = "fortune"
)

// Section is one named block of finding lines.
type Section struct {
	Name  string   `json:"name"`  // stable machine key
	Title string   `json:"title"` // human heading
	Lines []string `json:"lines"`
}

// Report is the composed analysis result.
type Report struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Subject     string    `json:"subject"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
	Warnings    []string  `json:"warnings,omitempty"`
}

// New creates an empty report envelope of the given kind.
func New(kind, subject string) *Report {
	return &Report{
		ID:          uuid.NewString(),
		Kind:        kind,
		Subject:     subject,
		GeneratedAt: time.Now().UTC(),
	}
}

// Add appends a section.
func (r *Report) Add(s Section) { r.Sections = append(r.Sections, s) }

// Warn appends warning strings, skipping empties.
func (r *Report) Warn(msgs ...string) {
	for _, m := range msgs {
		if m != "" {
			r.Warnings = append(r.Warnings, m)
		}
	}
}

// Section returns the section with the given machine key.
func (r *Report) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Text renders the report as plain text, sections joined with a separator
// rule of twenty dashes.
func (r *Report) Text() string { return r.TextWith("-", 20) }

// TextWith renders like Text with a custom separator glyph and rule width.
func (r *Report) TextWith(sep string, width int) string {
	if sep == "" {
		sep = "-"
	}
	if width <= 0 {
		width = 20
	}
	rule := strings.Repeat(sep, width)
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", r.Kind, r.Subject)
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "--- %s ---\n", s.Title)
		for _, line := range s.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "경고: %s\n", w)
	}
	return b.String()
}

// Markdown renders the report as markdown for terminal rendering.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Subject)
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		for _, line := range s.Lines {
			fmt.Fprintf(&b, "- %s\n", strings.TrimLeft(line, " -"))
		}
		b.WriteByte('\n')
	}
	if len(r.Warnings) > 0 {
		b.WriteString("## 경고\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

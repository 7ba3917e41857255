package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-kit/models"
	"github.com/charmbracelet/lipgloss"
)

type reportStyles struct {
	pass     lipgloss.Style
	fail     lipgloss.Style
	title    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	faint    lipgloss.Style
}

type reportWriter struct{}

// NewReportWriter returns a ReportWriter. Colors are used only when the
// destination writer is a terminal.
func NewReportWriter() ReportWriter {
	return reportWriter{}
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		pass:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		fail:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		title:    r.NewStyle().Bold(true),
		active:   r.NewStyle().Foreground(lipgloss.Color("2")),
		inactive: r.NewStyle().Faint(true),
		faint:    r.NewStyle().Faint(true),
	}
}

// WriteReport prints the item count, one line per item and a totals line.
func (reportWriter) WriteReport(w io.Writer, report models.SmokeReport) error {
	st := newReportStyles(w)

	var b strings.Builder
	b.WriteString(st.pass.Render("PASS") + " " + st.title.Render("API smoke test") + "\n")

	switch {
	case report.UsedMockToken:
		b.WriteString(st.faint.Render("token: development mock token") + "\n")
	case report.Token.IsJWT:
		line := "token: jwt"
		if report.Token.Subject != "" {
			line += ", subject " + report.Token.Subject
		}
		if !report.Token.ExpiresAt.IsZero() {
			line += ", expires " + report.Token.ExpiresAt.UTC().Format(time.RFC3339)
		}
		b.WriteString(st.faint.Render(line) + "\n")
	default:
		b.WriteString(st.faint.Render("token: opaque") + "\n")
	}

	fmt.Fprintf(&b, "items: %d\n", len(report.Items))
	for _, it := range report.Items {
		status := st.inactive.Render("inactive")
		if it.IsActive {
			status = st.active.Render("active")
		}
		fmt.Fprintf(&b, "  - %s (%s)\n", it.Title, status)
	}

	active := report.ActiveCount()
	fmt.Fprintf(&b, "total: %d active, %d inactive\n", active, len(report.Items)-active)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFailure prints the FAIL header followed by err.
func (reportWriter) WriteFailure(w io.Writer, err error) error {
	st := newReportStyles(w)

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	_, werr := fmt.Fprintf(w, "%s %s\n%s\n", st.fail.Render("FAIL"), st.title.Render("API smoke test"), msg)
	return werr
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Grades   map[scoring.Grade]lipgloss.Style
	Emphasis lipgloss.Style
}

// DefaultStyles returns colored styles, or plain ones when color is off.
func DefaultStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Section: plain, Label: plain, Muted: plain, Emphasis: plain, Grades: map[scoring.Grade]lipgloss.Style{}}
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Section:  lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Grades: map[scoring.Grade]lipgloss.Style{
			scoring.GradeDeficient:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			scoring.GradeFair:          lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			scoring.GradeAcceptable:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			scoring.GradeGood:          lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			scoring.GradeExcellent:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
			scoring.GradeNotApplicable: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (s Styles) grade(g scoring.Grade) string {
	if st, ok := s.Grades[g]; ok {
		return st.Render(string(g))
	}
	return string(g)
}

// RenderResult prints per-criterion and per-section scores followed by the global total.
func RenderResult(w io.Writer, st Styles, ev *evaluation.Evaluation, res scoring.Result) {
	if ev.General.VendorName != "" || ev.General.Period != "" {
		fmt.Fprintf(w, "%s %s  %s\n", st.Title.Render("Proveedor:"), ev.General.VendorName, st.Muted.Render(ev.General.Period))
	}

	for _, s := range ev.Sections {
		sr, _ := res.Section(s.ID)
		fmt.Fprintf(w, "\n%s  %s\n", st.Section.Render(s.Title), st.Muted.Render(scoring.FormatWeight(s.Weight)))
		for i, c := range s.Criteria {
			rating := "-"
			switch {
			case c.NotApplicable:
				rating = scoring.NotApplicableText
			case c.Rating.Valid():
				rating = fmt.Sprint(int(c.Rating))
			}
			weighted := "0"
			if i < len(sr.Criteria) {
				weighted = sr.Criteria[i].Display
			}
			fmt.Fprintf(w, "  %-45s %6s  %3s  %7s\n", c.Name, scoring.FormatWeight(c.Weight), rating, weighted)
		}
		fmt.Fprintf(w, "  %s %s  %s\n", st.Label.Render("Subtotal:"), sr.SubtotalDisplay, st.grade(sr.Grade))
	}

	fmt.Fprintf(w, "\n%s %s  %s\n", st.Emphasis.Render("Puntuación total:"), res.TotalDisplay, st.grade(res.Grade))
}

// RenderClassification prints a calculator result.
func RenderClassification(w io.Writer, st Styles, r classifier.Result) {
	fmt.Fprintf(w, "%s %s\n", st.Label.Render("Criterio:"), r.Kind)
	fmt.Fprintf(w, "%s %.2f %s\n", st.Label.Render("Valor:"), r.Value, r.Unit)
	fmt.Fprintf(w, "%s %s\n", st.Label.Render("Calificación sugerida:"), st.Emphasis.Render(fmt.Sprint(int(r.Rating))))
	fmt.Fprintf(w, "%s %s\n", st.Label.Render("Justificación:"), r.Justification)
}

// RenderVendors prints the catalog with SLA per service.
func RenderVendors(w io.Writer, st Styles, vendors []catalog.Vendor) {
	for _, v := range vendors {
		fmt.Fprintln(w, st.Title.Render(v.Name))
		for _, s := range v.Services {
			fmt.Fprintf(w, "  %s\n", st.Section.Render(s.Name))
			fmt.Fprintf(w, "    %s\n", st.Muted.Render(strings.Join([]string{
				"crítica " + s.SLA.Critical,
				"alta " + s.SLA.High,
				"media " + s.SLA.Medium,
				"baja " + s.SLA.Low,
			}, " · ")))
		}
	}
}

// Package export renders a scored evaluation as a CSV document.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

// BOM is written first so spreadsheet tools detect UTF-8.
const BOM = "\uFEFF"

// DefaultFilename is the suggested download name.
const DefaultFilename = "evaluacion_proveedor.csv"

// ContentType is the media type of the export.
const ContentType = "text/csv; charset=utf-8"

// SectionHeader is the column header of every scoring section block.
var SectionHeader = []string{"Criterio", "Peso", "Calificación (1-5)", "Ponderado", "Observaciones"}

// Write renders ev and its scores to w in fixed block order: general data,
// SLA parameters, ticket statistics, each scoring section, key metrics and
// closing observations. Blocks are separated by an empty line.
func Write(w io.Writer, ev *evaluation.Evaluation, res scoring.Result) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	blocks := []func(*csv.Writer) error{
		func(cw *csv.Writer) error { return writeGeneral(cw, ev.General) },
		func(cw *csv.Writer) error { return writeSLA(cw, ev.SLA) },
		func(cw *csv.Writer) error { return writeTickets(cw, ev.Tickets) },
	}
	for i := range ev.Sections {
		s := ev.Sections[i]
		sr, _ := res.Section(s.ID)
		blocks = append(blocks, func(cw *csv.Writer) error { return writeSection(cw, s, sr) })
	}
	blocks = append(blocks,
		func(cw *csv.Writer) error { return writeKeyMetrics(cw, ev.KeyMetrics) },
		func(cw *csv.Writer) error { return writeObservations(cw, ev.Observations) },
	)

	for i, block := range blocks {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		if err := block(cw); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Bytes renders the export into memory.
func Bytes(ev *evaluation.Evaluation, res scoring.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ev, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAll(cw *csv.Writer, records [][]string) error {
	for _, r := range records {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func writeGeneral(cw *csv.Writer, g evaluation.General) error {
	return writeAll(cw, [][]string{
		{"Datos Generales"},
		{"Nombre del Proveedor", g.VendorName},
		{"Período de Evaluación", g.Period},
		{"Responsable de la Evaluación", g.Evaluator},
		{"Fecha de Evaluación", g.Date},
	})
}

func writeSLA(cw *csv.Writer, sla evaluation.SLAParams) error {
	return writeAll(cw, [][]string{
		{"Parámetros de Evaluación - Tiempos de Respuesta Acordados (SLA)"},
		{"Prioridad", "Tiempo Acordado", "Valor Actual"},
		{"Crítica", sla.Critical.Agreed, sla.Critical.Actual},
		{"Alta", sla.High.Agreed, sla.High.Actual},
		{"Media", sla.Medium.Agreed, sla.Medium.Actual},
		{"Baja", sla.Low.Agreed, sla.Low.Actual},
	})
}

func writeTickets(cw *csv.Writer, t evaluation.TicketStats) error {
	rates := t.Rates()
	return writeAll(cw, [][]string{
		{"Parámetros de Evaluación - Estadísticas de Tickets"},
		{"Métricas", "Valor"},
		{"Tickets abiertos", strconv.Itoa(t.Opened)},
		{"Tickets resueltos", strconv.Itoa(t.Resolved)},
		{"Tickets reabiertos", strconv.Itoa(t.Reopened)},
		{"Porcentaje de resolución", classifier.FormatRate(rates.Resolution)},
		{"Porcentaje de reapertura", classifier.FormatRate(rates.Reopen)},
	})
}

func writeSection(cw *csv.Writer, s evaluation.SectionState, sr scoring.SectionResult) error {
	records := [][]string{{s.Title}, SectionHeader}
	for i, c := range s.Criteria {
		weighted := "0"
		if i < len(sr.Criteria) {
			weighted = sr.Criteria[i].Display
		}
		if c.NotApplicable {
			weighted = scoring.NotApplicableText
		}
		records = append(records, []string{
			c.Name,
			scoring.FormatWeight(c.Weight),
			ratingCell(c),
			weighted,
			c.Observation,
		})
	}

	subtotal := sr.SubtotalDisplay
	if subtotal == "" {
		subtotal = scoring.FormatScore(0)
	}
	records = append(records, []string{"Subtotal", scoring.FormatWeight(s.Weight), "", subtotal, ""})
	return writeAll(cw, records)
}

func ratingCell(c evaluation.CriterionState) string {
	if c.NotApplicable || !c.Rating.Valid() {
		return ""
	}
	return strconv.Itoa(int(c.Rating))
}

func writeKeyMetrics(cw *csv.Writer, metrics []evaluation.KeyMetric) error {
	records := [][]string{{"Análisis de Métricas Clave"}}
	for _, m := range metrics {
		records = append(records, []string{strings.Replace(m.Label, ":", "", 1), m.Value})
	}
	return writeAll(cw, records)
}

func writeObservations(cw *csv.Writer, o evaluation.Observations) error {
	return writeAll(cw, [][]string{
		{"Observaciones Generales y Plan de Acción"},
		{"Fortalezas identificadas", o.Strengths},
		{"Áreas de mejora", o.Improvements},
		{"Plan de acción recomendado", o.ActionPlan},
		{"Fecha de próxima evaluación", o.NextEvaluation},
	})
}

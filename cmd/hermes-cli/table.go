package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/internal/roster"
)

const nameWidth = 20

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
)

// renderResults lays out one row per athlete: per-test scores then the
// four composites. Missing values print as "-".
func renderResults(r *roster.Roster, results []model.Result) string {
	headers := []string{"id", "name"}
	for _, tt := range scoring.TestTypes {
		headers = append(headers, tt.String())
	}
	for _, c := range composite.Categories {
		headers = append(headers, c.String())
	}

	rows := make([][]string, 0, len(results))
	for i := range results {
		res := &results[i]
		a := r.Athletes[i].Athlete()
		row := []string{res.AthleteID, runewidth.Truncate(a.FullName(), nameWidth, "…")}
		for _, tt := range scoring.TestTypes {
			row = append(row, scoreCell(res.Scores, tt))
		}
		for _, c := range composite.Categories {
			row = append(row, compositeCell(res.Composites.Get(c)))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < 2:
				return cellStyle
			default:
				return numStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
	return fmt.Sprintf("occasion %s\n%s", r.Occasion, t.String())
}

func scoreCell(s composite.Scores, tt scoring.TestType) string {
	v, ok := s[tt]
	if !ok {
		return "-"
	}
	return strconv.Itoa(v)
}

func compositeCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

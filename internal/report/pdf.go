// Package report renders the breathing history as a PDF.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/models"
	"github.com/akyairhashvil/calmtide/internal/util"
	"github.com/go-pdf/fpdf"
)

// Source is the read side of the session history.
type Source interface {
	ListSessions(ctx context.Context, limit int) ([]models.BreathSession, error)
	SessionStats(ctx context.Context) ([]models.TechniqueStats, error)
}

// GeneratePDF writes a report named after now into dir and returns its path.
func GeneratePDF(ctx context.Context, src Source, dir string, now time.Time) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-report-%s.pdf", config.AppName, now.Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := Render(ctx, src, f, now); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

// Render writes the PDF document to w.
func Render(ctx context.Context, src Source, w io.Writer, now time.Time) error {
	stats, err := src.SessionStats(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	sessions, err := src.ListSessions(ctx, config.ReportSessionLimit)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Breathing Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Breathing Report: %s", now.Format("2006-01-02")))
	pdf.Ln(14)

	totalSeconds, totalCycles, totalSessions := 0, 0, 0
	for _, st := range stats {
		totalSeconds += st.TotalSeconds
		totalCycles += st.TotalCycles
		totalSessions += st.Sessions
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%s, %s, %s of practice",
		util.Plural(totalSessions, "session", "sessions"),
		util.Plural(totalCycles, "cycle", "cycles"),
		util.FormatDuration(time.Duration(totalSeconds)*time.Second)))
	pdf.Ln(10)

	if len(stats) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "By Technique")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, st := range stats {
			pdf.Cell(0, 8, fmt.Sprintf("  %s: %s, %s, %s",
				st.TechniqueName,
				util.Plural(st.Sessions, "session", "sessions"),
				util.Plural(st.TotalCycles, "cycle", "cycles"),
				util.FormatDuration(st.Total())))
			pdf.Ln(6)
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Recent Sessions")
	pdf.Ln(8)
	if len(sessions) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "  - No sessions recorded yet.")
		pdf.Ln(8)
	} else {
		headers := []string{"Started", "Technique", "Duration", "Cycles", "Ended by"}
		widths := []float64{42, 58, 30, 22, 30}
		pdf.SetFont("Arial", "B", 11)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 11)
		for _, s := range sessions {
			row := []string{
				s.StartedAt.Local().Format("2006-01-02 15:04"),
				s.TechniqueName,
				util.FormatClock(s.Duration()),
				fmt.Sprintf("%d", s.Cycles),
				string(s.Status),
			}
			for i, cell := range row {
				pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

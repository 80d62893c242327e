package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

// ReportWriter renders assessment summaries into the reports directory.
type ReportWriter struct {
	dir string
}

func NewReportWriter(dir string) *ReportWriter { return &ReportWriter{dir: dir} }

// Write renders one printable report and returns its filename.
func (w *ReportWriter) Write(rec bridge.RecordRequest, now time.Time) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	name := fmt.Sprintf("assessment_%s_%s.txt", sanitizeID(rec.PatientID), now.Format("20060102_150405"))

	var b strings.Builder
	fmt.Fprintf(&b, "MATERNAL RISK ASSESSMENT REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Patient ID:     %s\n", rec.PatientID)
	fmt.Fprintf(&b, "Health Worker:  %s\n\n", rec.HealthWorker)
	fmt.Fprintf(&b, "Age:            %s\n", formatNumber(rec.Age))
	fmt.Fprintf(&b, "BMI:            %.1f\n", rec.BMI)
	fmt.Fprintf(&b, "Blood Pressure: %s/%s mmHg\n", formatNumber(rec.Systolic), formatNumber(rec.Diastolic))
	if rec.LabAvailable {
		fmt.Fprintf(&b, "Blood Sugar:    %s mmol/L\n", formatNumber(rec.BloodSugar))
		fmt.Fprintf(&b, "Hemoglobin:     %s g/dL\n", formatNumber(rec.Hemoglobin))
	} else {
		fmt.Fprintf(&b, "Blood Sugar:    N/A\n")
		fmt.Fprintf(&b, "Hemoglobin:     N/A\n")
	}
	fmt.Fprintf(&b, "\nRisk Level:     %s\n", rec.RiskLevel)
	fmt.Fprintf(&b, "Confidence:     %.1f%%\n", rec.Confidence)
	fmt.Fprintf(&b, "Model:          %s\n", rec.ModelUsed)

	if err := os.WriteFile(filepath.Join(w.dir, name), []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return name, nil
}

// sanitizeID keeps filenames portable whatever was typed as the id.
func sanitizeID(id string) string {
	if id == "" {
		return "NA"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, id)
}

package repository

import (
	"context"
	"database/sql"
	"time"
)

// AssessmentRepo handles assessment rows.
type AssessmentRepo struct {
	db *sql.DB
}

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo { return &AssessmentRepo{db: db} }

func (r *AssessmentRepo) Insert(ctx context.Context, a Assessment) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO assessments(
	 id, recorded_at, patient_id, health_worker, age, bmi, systolic, diastolic,
	 blood_sugar, hemoglobin, risk_level, confidence, model_used, lab_available)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		a.ID, a.RecordedAt, a.PatientID, a.HealthWorker, a.Age, a.BMI, a.Systolic,
		a.Diastolic, a.BloodSugar, a.Hemoglobin, a.RiskLevel, a.Confidence,
		a.ModelUsed, a.LabAvailable)
	return err
}

// ListAll returns every stored assessment, newest first.
func (r *AssessmentRepo) ListAll(ctx context.Context) ([]Assessment, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, recorded_at, patient_id, health_worker, age, bmi, systolic, diastolic,
	       blood_sugar, hemoglobin, risk_level, confidence, model_used, lab_available
	FROM assessments
	ORDER BY recorded_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountByRisk returns totals per risk level for the dashboard.
func (r *AssessmentRepo) CountByRisk(ctx context.Context) (RiskCounts, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT
	 COALESCE(SUM(CASE WHEN risk_level = 'Low' THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN risk_level = 'Moderate' THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN risk_level = 'High' THEN 1 ELSE 0 END), 0)
	FROM assessments`)

	var c RiskCounts
	if err := row.Scan(&c.Low, &c.Moderate, &c.High); err != nil {
		return RiskCounts{}, err
	}
	return c, nil
}

// DailyCounts returns per-day assessment counts since the given time.
// Days with no assessments produce no row.
func (r *AssessmentRepo) DailyCounts(ctx context.Context, since time.Time) ([]DayCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT date(recorded_at), COUNT(*)
	FROM assessments
	WHERE recorded_at >= ?
	GROUP BY date(recorded_at)
	ORDER BY date(recorded_at)`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayCount
	for rows.Next() {
		var d DayCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// FactorCounts tallies how many stored assessments trip each clinical
// threshold. Lab-gated factors only count rows that carry lab values.
func (r *AssessmentRepo) FactorCounts(ctx context.Context) ([]FactorCount, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT
	 COALESCE(SUM(CASE WHEN systolic >= 140 THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN diastolic >= 90 THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN blood_sugar IS NOT NULL AND blood_sugar >= 11 THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN hemoglobin IS NOT NULL AND hemoglobin < 9 THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN bmi < 18.5 OR bmi >= 25 THEN 1 ELSE 0 END), 0),
	 COALESCE(SUM(CASE WHEN age < 18 OR age >= 35 THEN 1 ELSE 0 END), 0)
	FROM assessments`)

	counts := make([]int, 6)
	if err := row.Scan(&counts[0], &counts[1], &counts[2], &counts[3], &counts[4], &counts[5]); err != nil {
		return nil, err
	}

	codes := []string{
		"high_systolic", "high_diastolic", "high_sugar",
		"low_hemoglobin", "bmi_out_of_range", "age_extreme",
	}
	out := make([]FactorCount, 0, len(codes))
	for i, code := range codes {
		out = append(out, FactorCount{Code: code, Count: counts[i]})
	}
	return out, nil
}

// Count returns the total number of stored assessments.
func (r *AssessmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&n)
	return n, err
}

// scanAssessment handles nullable lab fields for both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row scanner) (Assessment, error) {
	var a Assessment
	var sugar, hb sql.NullFloat64
	if err := row.Scan(&a.ID, &a.RecordedAt, &a.PatientID, &a.HealthWorker, &a.Age,
		&a.BMI, &a.Systolic, &a.Diastolic, &sugar, &hb, &a.RiskLevel,
		&a.Confidence, &a.ModelUsed, &a.LabAvailable); err != nil {
		return Assessment{}, err
	}
	if sugar.Valid {
		a.BloodSugar = &sugar.Float64
	}
	if hb.Valid {
		a.Hemoglobin = &hb.Float64
	}
	return a, nil
}

package repository

import "time"

// Assessment represents one stored risk assessment row.
// BloodSugar and Hemoglobin are nil when the assessment ran without lab
// values, matching the NULL columns in the store.
type Assessment struct {
	ID           string
	RecordedAt   time.Time
	PatientID    string
	HealthWorker string
	Age          float64
	BMI          float64
	Systolic     float64
	Diastolic    float64
	BloodSugar   *float64
	Hemoglobin   *float64
	RiskLevel    string
	Confidence   float64
	ModelUsed    string
	LabAvailable bool
}

// RiskCounts holds per-level assessment totals for the dashboard.
type RiskCounts struct {
	Low      int
	Moderate int
	High     int
}

// DayCount is the number of assessments recorded on one calendar day.
type DayCount struct {
	Day   string // YYYY-MM-DD
	Count int
}

// FactorCount is how many stored assessments exhibit one risk factor.
type FactorCount struct {
	Code  string
	Count int
}

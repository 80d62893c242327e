package server

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rifat-hossain/matricheck/internal/bridge"
	"github.com/rifat-hossain/matricheck/internal/database"
	"github.com/rifat-hossain/matricheck/internal/database/repository"
)

// Handler serves the screening RPCs.
type Handler struct {
	assessments *repository.AssessmentRepo
	reports     *ReportWriter
	logger      zerolog.Logger
}

func NewHandler(assessments *repository.AssessmentRepo, reports *ReportWriter, logger zerolog.Logger) *Handler {
	return &Handler{assessments: assessments, reports: reports, logger: logger}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rpc := e.Group("/rpc")
	rpc.POST("/assess_risk", h.AssessRisk)
	rpc.POST("/generate_patient_id", h.GeneratePatientID)
	rpc.POST("/save_assessment", h.SaveAssessment)
	rpc.POST("/generate_pdf_report", h.GeneratePDFReport)
	rpc.POST("/load_history", h.LoadHistory)
	rpc.POST("/get_dashboard_stats", h.DashboardStats)
	e.GET("/healthz", h.Healthz)
}

// Wire shapes. Declared errors travel in the payload, not the HTTP status;
// clients treat the body as the contract.

type errorResponse struct {
	Error string `json:"error"`
}

type probabilitiesPayload struct {
	Low      float64 `json:"low"`
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
}

type assessResponse struct {
	RiskLevel     string               `json:"risk_level"`
	Confidence    float64              `json:"confidence"`
	Probabilities probabilitiesPayload `json:"probabilities"`
	BMI           float64              `json:"bmi"`
	ModelUsed     string               `json:"model_used"`
	LabAvailable  bool                 `json:"lab_available"`
}

type idResponse struct {
	Success   bool   `json:"success"`
	PatientID string `json:"patient_id"`
}

type saveResponse struct {
	Success   bool   `json:"success"`
	PatientID string `json:"patient_id"`
	Message   string `json:"message"`
}

type reportResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}

type historyRow struct {
	Timestamp    string `json:"Timestamp"`
	PatientID    string `json:"Patient_ID"`
	Age          string `json:"Age"`
	BMI          string `json:"BMI"`
	Systolic     string `json:"SystolicBP"`
	Diastolic    string `json:"DiastolicBP"`
	BloodSugar   string `json:"Blood_Sugar"`
	Hemoglobin   string `json:"Hemoglobin"`
	RiskLevel    string `json:"Risk_Level"`
	Confidence   string `json:"Confidence"`
	ModelUsed    string `json:"Model_Used"`
	LabAvailable string `json:"Lab_Available"`
	HealthWorker string `json:"Health_Worker"`
}

type trendPayload struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type factorPayload struct {
	Code  string  `json:"code"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

type statsResponse struct {
	RiskCounts struct {
		Low      int `json:"low"`
		Moderate int `json:"moderate"`
		High     int `json:"high"`
	} `json:"risk_counts"`
	Total   int             `json:"total"`
	Trend   []trendPayload  `json:"weekly_trend"`
	Factors []factorPayload `json:"top_factors"`
}

func (h *Handler) AssessRisk(c echo.Context) error {
	var req bridge.AssessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
	}
	res, err := scoreAssessment(req)
	if err != nil {
		h.logger.Warn().Err(err).Msg("assessment rejected")
		return c.JSON(http.StatusOK, errorResponse{Error: err.Error()})
	}
	h.logger.Info().
		Str("risk_level", res.RiskLevel).
		Float64("confidence", res.Confidence).
		Str("model", res.ModelUsed).
		Msg("assessment complete")
	return c.JSON(http.StatusOK, assessResponse{
		RiskLevel:  res.RiskLevel,
		Confidence: res.Confidence,
		Probabilities: probabilitiesPayload{
			Low:      res.ProbLow,
			Moderate: res.ProbModerate,
			High:     res.ProbHigh,
		},
		BMI:          res.BMI,
		ModelUsed:    res.ModelUsed,
		LabAvailable: res.LabAvailable,
	})
}

func (h *Handler) GeneratePatientID(c echo.Context) error {
	id := newPatientID(database.Now())
	return c.JSON(http.StatusOK, idResponse{Success: true, PatientID: id})
}

func (h *Handler) SaveAssessment(c echo.Context) error {
	var req bridge.RecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
	}

	a := repository.Assessment{
		ID:           uuid.NewString(),
		RecordedAt:   database.Now(),
		PatientID:    req.PatientID,
		HealthWorker: req.HealthWorker,
		Age:          req.Age,
		BMI:          req.BMI,
		Systolic:     req.Systolic,
		Diastolic:    req.Diastolic,
		RiskLevel:    req.RiskLevel,
		Confidence:   req.Confidence,
		ModelUsed:    req.ModelUsed,
		LabAvailable: req.LabAvailable,
	}
	if req.LabAvailable {
		sugar, hb := req.BloodSugar, req.Hemoglobin
		a.BloodSugar = &sugar
		a.Hemoglobin = &hb
	}

	if err := h.assessments.Insert(c.Request().Context(), a); err != nil {
		h.logger.Error().Err(err).Str("patient_id", req.PatientID).Msg("save failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "could not store assessment: " + err.Error()})
	}
	h.logger.Info().Str("patient_id", req.PatientID).Str("risk_level", req.RiskLevel).Msg("assessment saved")
	return c.JSON(http.StatusOK, saveResponse{Success: true, PatientID: req.PatientID, Message: "Assessment saved successfully"})
}

func (h *Handler) GeneratePDFReport(c echo.Context) error {
	var req bridge.RecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
	}
	name, err := h.reports.Write(req, database.Now())
	if err != nil {
		h.logger.Error().Err(err).Msg("report generation failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "could not generate report: " + err.Error()})
	}
	h.logger.Info().Str("filename", name).Msg("report written")
	return c.JSON(http.StatusOK, reportResponse{Success: true, Filename: name})
}

func (h *Handler) LoadHistory(c echo.Context) error {
	list, err := h.assessments.ListAll(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("history query failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "could not load history: " + err.Error()})
	}
	rows := make([]historyRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, historyRow{
			Timestamp:    a.RecordedAt.Format("2006-01-02 15:04:05"),
			PatientID:    a.PatientID,
			Age:          formatNumber(a.Age),
			BMI:          fmt.Sprintf("%.1f", a.BMI),
			Systolic:     formatNumber(a.Systolic),
			Diastolic:    formatNumber(a.Diastolic),
			BloodSugar:   formatLab(a.BloodSugar),
			Hemoglobin:   formatLab(a.Hemoglobin),
			RiskLevel:    a.RiskLevel,
			Confidence:   fmt.Sprintf("%.1f%%", a.Confidence),
			ModelUsed:    a.ModelUsed,
			LabAvailable: yesNo(a.LabAvailable),
			HealthWorker: a.HealthWorker,
		})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) DashboardStats(c echo.Context) error {
	ctx := c.Request().Context()

	counts, err := h.assessments.CountByRisk(ctx)
	if err != nil {
		return h.statsError(c, err)
	}
	total, err := h.assessments.Count(ctx)
	if err != nil {
		return h.statsError(c, err)
	}

	now := database.Now()
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -6)
	days, err := h.assessments.DailyCounts(ctx, weekStart)
	if err != nil {
		return h.statsError(c, err)
	}
	factors, err := h.assessments.FactorCounts(ctx)
	if err != nil {
		return h.statsError(c, err)
	}

	var resp statsResponse
	resp.RiskCounts.Low = counts.Low
	resp.RiskCounts.Moderate = counts.Moderate
	resp.RiskCounts.High = counts.High
	resp.Total = total
	resp.Trend = make([]trendPayload, 0, len(days))
	for _, d := range days {
		resp.Trend = append(resp.Trend, trendPayload{Date: d.Day, Count: d.Count})
	}
	resp.Factors = rankFactors(factors, total)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (h *Handler) statsError(c echo.Context, err error) error {
	h.logger.Error().Err(err).Msg("stats query failed")
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "could not compute stats: " + err.Error()})
}

// rankFactors orders factors by prevalence and drops the absent ones; an
// all-zero store yields an empty list.
func rankFactors(factors []repository.FactorCount, total int) []factorPayload {
	out := make([]factorPayload, 0, len(factors))
	for _, f := range factors {
		if f.Count == 0 {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = round1(float64(f.Count) / float64(total) * 100)
		}
		out = append(out, factorPayload{Code: f.Code, Count: f.Count, Pct: pct})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// newPatientID mints ids like PAT-20260821-7F3A.
func newPatientID(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("PAT-%s-%X", now.Format("20060102"), u[:2])
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatLab(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatNumber(*v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

/*
handlers.go - HTTP API handlers for the shift engine

PURPOSE:
  Exposes the schedule/payroll engine via REST. Handles HTTP
  request/response, JSON serialization, and delegates to the engine
  packages. Every mutation follows the engine's persistence model: load the
  full collection, compute in memory, write the full collection back.

ENDPOINTS:
  Workplaces:
    GET    /api/workplaces                     List workplaces (seeded on first load)
    POST   /api/workplaces                     Create workplace

  Schedules:
    GET    /api/schedules?year=&month=         List (optionally by month)
    POST   /api/schedules                      Author shift; runs recurrence expansion once
    PUT    /api/schedules/{id}                 Edit one instance
    DELETE /api/schedules/{id}                 Delete one instance
    PATCH  /api/schedules/{id}/status          Clock-in/out progression
    GET    /api/schedules/summary?year=&month= Monthly rollup
    GET    /api/recommendations/free-slot      Weekly free-slot message

  Jobs & income:
    GET    /api/jobs                           Job catalogue with application state
    POST   /api/jobs/{id}/apply                Apply to a posting
    PUT    /api/jobs/{id}/application          Employer decision
    GET    /api/income/summary?year=&month=    Income dashboard payload
    PUT    /api/settlements/{id}               Settlement overlay update

ERROR HANDLING:
  - 400: Validation failures, malformed bodies/queries
  - 404: Unknown schedule/job instance
  - 500: Storage failures
  Computational edge cases never error; the engine returns zeroed/neutral
  results by contract.
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/shift-engine/income"
	"github.com/warp/shift-engine/schedule"
	"github.com/warp/shift-engine/store"
)

// inlineWorkplaceColor is assigned to workplaces created implicitly while
// authoring a shift, matching the reference app's default.
const inlineWorkplaceColor = "#4ECDC4"

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Repo *store.Repository
	Log  *slog.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewHandler(repo *store.Repository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Repo: repo, Log: logger, Now: time.Now}
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// =============================================================================
// WORKPLACE HANDLERS
// =============================================================================

// ListWorkplaces returns all workplaces, seeding defaults on first load.
func (h *Handler) ListWorkplaces(w http.ResponseWriter, r *http.Request) {
	workplaces, err := h.Repo.LoadWorkplaces(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load workplaces", err)
		return
	}
	writeJSON(w, http.StatusOK, workplaces)
}

// CreateWorkplace creates a workplace explicitly.
func (h *Handler) CreateWorkplace(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Workplace name is required", nil)
		return
	}
	if req.Color == "" {
		req.Color = inlineWorkplaceColor
	}

	ctx := r.Context()
	workplaces, err := h.Repo.LoadWorkplaces(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load workplaces", err)
		return
	}

	wp := schedule.Workplace{
		ID:    schedule.WorkplaceID(uuid.NewString()),
		Name:  req.Name,
		Color: req.Color,
	}
	workplaces = append(workplaces, wp)

	if err := h.Repo.SaveWorkplaces(ctx, workplaces); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save workplaces", err)
		return
	}
	writeJSON(w, http.StatusCreated, wp)
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// ListSchedules returns schedules, filtered to a month when year/month query
// parameters are present.
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.LoadSchedules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}

	if r.URL.Query().Get("year") == "" && r.URL.Query().Get("month") == "" {
		if items == nil {
			items = []schedule.ScheduleItem{}
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	year, month, err := h.yearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year/month", err)
		return
	}

	filtered := schedule.SchedulesForMonth(items, year, month)
	if filtered == nil {
		filtered = []schedule.ScheduleItem{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

// CreateSchedule authors a shift: validates the draft, resolves (or inline
// creates) the workplace, runs recurrence expansion exactly once, persists
// the origin plus all siblings, and returns the full set.
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()

	workplaceID := schedule.WorkplaceID(req.WorkplaceID)
	if workplaceID == "" && req.WorkplaceName != "" {
		id, err := h.resolveWorkplaceByName(r, req.WorkplaceName)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to resolve workplace", err)
			return
		}
		workplaceID = id
	}

	origin := schedule.ScheduleItem{
		ID:           schedule.ScheduleID(strconv.FormatInt(h.now().UnixMilli(), 10)),
		WorkplaceID:  workplaceID,
		ScheduleName: req.WorkplaceName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ScheduleType: schedule.ScheduleType(req.ScheduleType),
		SalaryType:   schedule.SalaryType(req.SalaryType),
		HourlyWage:   req.HourlyWage,
		DailyWage:    req.DailyWage,
		BreakMinutes: req.BreakMinutes,
		RepeatType:   schedule.RepeatType(req.RepeatType),
		RepeatDays:   req.RepeatDays,
		Memo:         req.Memo,
		Color:        req.Color,
		Notification: req.Notification,
		Status:       schedule.StatusUpcoming,
	}
	if origin.ScheduleType == "" {
		origin.ScheduleType = schedule.ScheduleWork
	}
	if origin.SalaryType == "" {
		origin.SalaryType = schedule.SalaryHourly
	}
	if origin.RepeatType == "" {
		origin.RepeatType = schedule.RepeatNone
	}

	if err := schedule.ValidateDraft(origin); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid schedule", err)
		return
	}

	created := append([]schedule.ScheduleItem{origin}, schedule.Expand(origin)...)

	items, err := h.Repo.LoadSchedules(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}
	items = append(items, created...)

	if err := h.Repo.SaveSchedules(ctx, items); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedules", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateScheduleResponse{Created: created})
}

// resolveWorkplaceByName finds a workplace by display name, creating one when
// it does not exist yet (inline creation during shift authoring).
func (h *Handler) resolveWorkplaceByName(r *http.Request, name string) (schedule.WorkplaceID, error) {
	ctx := r.Context()
	workplaces, err := h.Repo.LoadWorkplaces(ctx)
	if err != nil {
		return "", err
	}
	for _, wp := range workplaces {
		if wp.Name == name {
			return wp.ID, nil
		}
	}

	wp := schedule.Workplace{
		ID:    schedule.WorkplaceID(uuid.NewString()),
		Name:  name,
		Color: inlineWorkplaceColor,
	}
	workplaces = append(workplaces, wp)
	if err := h.Repo.SaveWorkplaces(ctx, workplaces); err != nil {
		return "", err
	}
	return wp.ID, nil
}

// UpdateSchedule edits exactly one instance in place. Siblings from the same
// recurrence series are untouched and expansion is never re-run.
func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id := schedule.ScheduleID(chi.URLParam(r, "id"))

	var req UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	items, err := h.Repo.LoadSchedules(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}

	idx := indexOf(items, id)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "Schedule not found", schedule.ErrScheduleNotFound)
		return
	}

	item := items[idx]
	if req.WorkplaceID != "" {
		item.WorkplaceID = schedule.WorkplaceID(req.WorkplaceID)
	}
	if req.Date != "" {
		item.Date = req.Date
	}
	if req.StartTime != "" {
		item.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		item.EndTime = req.EndTime
	}
	if req.ScheduleType != "" {
		item.ScheduleType = schedule.ScheduleType(req.ScheduleType)
	}
	if req.SalaryType != "" {
		item.SalaryType = schedule.SalaryType(req.SalaryType)
	}
	if req.HourlyWage != nil {
		item.HourlyWage = *req.HourlyWage
	}
	if req.DailyWage != nil {
		item.DailyWage = *req.DailyWage
	}
	if req.BreakMinutes != nil {
		item.BreakMinutes = *req.BreakMinutes
	}
	if req.Memo != nil {
		item.Memo = *req.Memo
	}
	if req.Color != nil {
		item.Color = *req.Color
	}
	if req.Notification != nil {
		item.Notification = *req.Notification
	}

	if err := schedule.ValidateDraft(item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid schedule", err)
		return
	}

	items[idx] = item
	if err := h.Repo.SaveSchedules(ctx, items); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedules", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteSchedule removes exactly one instance.
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id := schedule.ScheduleID(chi.URLParam(r, "id"))

	ctx := r.Context()
	items, err := h.Repo.LoadSchedules(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}

	idx := indexOf(items, id)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "Schedule not found", schedule.ErrScheduleNotFound)
		return
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := h.Repo.SaveSchedules(ctx, items); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedules", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateScheduleStatus advances the clock-in/out status of one instance.
func (h *Handler) UpdateScheduleStatus(w http.ResponseWriter, r *http.Request) {
	id := schedule.ScheduleID(chi.URLParam(r, "id"))

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := schedule.WorkStatus(req.Status)
	switch status {
	case schedule.StatusUpcoming, schedule.StatusWorking, schedule.StatusDone:
	default:
		writeError(w, http.StatusBadRequest, "Invalid status", fmt.Errorf("unknown status %q", req.Status))
		return
	}

	ctx := r.Context()
	items, err := h.Repo.LoadSchedules(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}

	idx := indexOf(items, id)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "Schedule not found", schedule.ErrScheduleNotFound)
		return
	}

	items[idx].Status = status
	if err := h.Repo.SaveSchedules(ctx, items); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedules", err)
		return
	}
	writeJSON(w, http.StatusOK, items[idx])
}

// GetMonthlySummary returns total hours, work days, and estimated salary for
// one month.
func (h *Handler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.yearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year/month", err)
		return
	}

	items, err := h.Repo.LoadSchedules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}

	writeJSON(w, http.StatusOK, schedule.SummarizeMonth(items, year, month))
}

// GetFreeSlot returns the weekly free-slot recommendation message.
func (h *Handler) GetFreeSlot(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.LoadSchedules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}
	writeJSON(w, http.StatusOK, FreeSlotDTO{Message: schedule.FindFreeSlot(items, h.now())})
}

// =============================================================================
// JOB & INCOME HANDLERS
// =============================================================================

// ListJobs returns the job catalogue with application state overlaid.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Repo.LoadJobs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load jobs", err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// ApplyToJob records a pending application dated today.
func (h *Handler) ApplyToJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	ctx := r.Context()

	jobs, err := h.Repo.LoadJobs(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load jobs", err)
		return
	}
	if !jobExists(jobs, jobID) {
		writeError(w, http.StatusNotFound, "Job not found", nil)
		return
	}

	apps, err := h.Repo.LoadApplications(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load applications", err)
		return
	}

	apps = income.Apply(apps, jobID, h.now())
	if err := h.Repo.SaveApplications(ctx, apps); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save applications", err)
		return
	}

	jobs = income.SyncApplications(jobs, apps)
	if err := h.Repo.SaveJobs(ctx, jobs); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save jobs", err)
		return
	}

	writeJSON(w, http.StatusOK, apps[jobID])
}

// UpdateApplication sets the employer decision (approve/reject).
func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	var req ApplicationDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := income.ApplicationStatus(req.Status)
	switch status {
	case income.ApplicationPending, income.ApplicationApproved, income.ApplicationRejected:
	default:
		writeError(w, http.StatusBadRequest, "Invalid status", fmt.Errorf("unknown status %q", req.Status))
		return
	}

	ctx := r.Context()
	apps, err := h.Repo.LoadApplications(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load applications", err)
		return
	}

	apps = income.UpdateApplicationStatus(apps, jobID, status)
	if err := h.Repo.SaveApplications(ctx, apps); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save applications", err)
		return
	}

	jobs, err := h.Repo.LoadJobs(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load jobs", err)
		return
	}
	jobs = income.SyncApplications(jobs, apps)
	if err := h.Repo.SaveJobs(ctx, jobs); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save jobs", err)
		return
	}

	writeJSON(w, http.StatusOK, apps[jobID])
}

// GetIncomeSummary returns the income dashboard payload for one month.
func (h *Handler) GetIncomeSummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.yearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year/month", err)
		return
	}

	ctx := r.Context()
	jobs, err := h.Repo.LoadJobs(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load jobs", err)
		return
	}
	settlements, err := h.Repo.LoadSettlements(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settlements", err)
		return
	}

	completed := income.CompletedWorks(jobs, settlements)
	if completed == nil {
		completed = []income.Work{}
	}

	prevYear, prevMonth := year, month-1
	if month == time.January {
		prevYear, prevMonth = year-1, time.December
	}

	current := income.MonthlyIncome(completed, settlements, year, month)
	previous := income.MonthlyIncome(completed, settlements, prevYear, prevMonth)

	byStore := income.IncomeByStore(completed, settlements, year, month)
	if byStore == nil {
		byStore = []income.StoreIncome{}
	}

	writeJSON(w, http.StatusOK, IncomeSummaryDTO{
		Year:                 year,
		Month:                int(month),
		CompletedWorks:       completed,
		MonthIncome:          current,
		PreviousMonthIncome:  previous,
		ExpectedIncome:       income.ExpectedIncome(completed, year, month),
		MonthOverMonthGrowth: income.MonthOverMonthGrowth(current, previous),
		IncomeByStore:        byStore,
	})
}

// UpdateSettlement records a settlement decision for a completed work.
func (h *Handler) UpdateSettlement(w http.ResponseWriter, r *http.Request) {
	workID := chi.URLParam(r, "id")

	var req SettlementUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := income.SettlementStatus(req.Status)
	switch status {
	case income.SettlementPending, income.SettlementCompleted:
	default:
		writeError(w, http.StatusBadRequest, "Invalid status", fmt.Errorf("unknown status %q", req.Status))
		return
	}

	ctx := r.Context()
	settlements, err := h.Repo.LoadSettlements(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settlements", err)
		return
	}

	settlements = income.UpdateSettlement(settlements, workID, status, req.ActualPay)
	if err := h.Repo.SaveSettlements(ctx, settlements); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settlements", err)
		return
	}

	writeJSON(w, http.StatusOK, settlements[workID])
}

// =============================================================================
// HELPERS
// =============================================================================

// yearMonth reads the year/month query pair, defaulting to the current
// month.
func (h *Handler) yearMonth(r *http.Request) (int, time.Month, error) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("year: %w", err)
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("month: %w", err)
		}
		if m < 1 || m > 12 {
			return 0, 0, errors.New("month out of range")
		}
		month = time.Month(m)
	}
	return year, month, nil
}

func indexOf(items []schedule.ScheduleItem, id schedule.ScheduleID) int {
	for i, s := range items {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func jobExists(jobs []income.Work, id string) bool {
	for _, j := range jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

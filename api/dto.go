/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Collections are
  serialized straight from the model types (their json tags ARE the
  persisted/external format); the types here cover request bodies and the
  composite response shapes the dashboard renders.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO/*Response: Response wrappers

VALIDATION:
  Authoring requests are converted to schedule.ScheduleItem and validated
  through schedule.ValidateDraft; DTOs stay pure data carriers.
*/
package api

import (
	"github.com/warp/shift-engine/income"
	"github.com/warp/shift-engine/schedule"
)

// =============================================================================
// WORKPLACES
// =============================================================================

// CreateWorkplaceRequest creates a workplace explicitly (the schedule form's
// "새 알바 등록" flow).
type CreateWorkplaceRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// =============================================================================
// SCHEDULES
// =============================================================================

// CreateScheduleRequest is an authored shift draft. Either WorkplaceID
// references an existing workplace, or WorkplaceName requests inline
// creation (lookup by name, create when absent).
type CreateScheduleRequest struct {
	WorkplaceID   string `json:"workplaceId,omitempty"`
	WorkplaceName string `json:"workplaceName,omitempty"`

	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	ScheduleType string `json:"scheduleType,omitempty"`
	SalaryType   string `json:"salaryType,omitempty"`
	HourlyWage   int64  `json:"hourlyWage,omitempty"`
	DailyWage    int64  `json:"dailyWage,omitempty"`
	BreakMinutes int    `json:"breakMinutes,omitempty"`

	RepeatType string `json:"repeatType,omitempty"`
	RepeatDays []int  `json:"repeatDays,omitempty"`

	Memo         string `json:"memo,omitempty"`
	Color        string `json:"color,omitempty"`
	Notification bool   `json:"notification,omitempty"`
}

// UpdateScheduleRequest edits exactly one instance. There is no
// edit-the-series operation; siblings are untouched and the edit never
// re-runs recurrence expansion.
type UpdateScheduleRequest struct {
	WorkplaceID  string  `json:"workplaceId,omitempty"`
	Date         string  `json:"date,omitempty"`
	StartTime    string  `json:"startTime,omitempty"`
	EndTime      string  `json:"endTime,omitempty"`
	ScheduleType string  `json:"scheduleType,omitempty"`
	SalaryType   string  `json:"salaryType,omitempty"`
	HourlyWage   *int64  `json:"hourlyWage,omitempty"`
	DailyWage    *int64  `json:"dailyWage,omitempty"`
	BreakMinutes *int    `json:"breakMinutes,omitempty"`
	Memo         *string `json:"memo,omitempty"`
	Color        *string `json:"color,omitempty"`
	Notification *bool   `json:"notification,omitempty"`
}

// UpdateStatusRequest advances a shift's clock-in/out status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateScheduleResponse returns the authored shift plus the expanded
// sibling set, origin first.
type CreateScheduleResponse struct {
	Created []schedule.ScheduleItem `json:"created"`
}

// FreeSlotDTO wraps the recommendation display string.
type FreeSlotDTO struct {
	Message string `json:"message"`
}

// =============================================================================
// JOBS / INCOME
// =============================================================================

// ApplicationDecisionRequest sets the employer decision on an application.
type ApplicationDecisionRequest struct {
	Status string `json:"status"`
}

// SettlementUpdateRequest records a settlement decision for a completed work.
type SettlementUpdateRequest struct {
	Status    string `json:"status"`
	ActualPay int64  `json:"actualPay,omitempty"`
}

// IncomeSummaryDTO is the income dashboard payload for one month.
type IncomeSummaryDTO struct {
	Year                 int                  `json:"year"`
	Month                int                  `json:"month"`
	CompletedWorks       []income.Work        `json:"completedWorks"`
	MonthIncome          int64                `json:"monthIncome"`
	PreviousMonthIncome  int64                `json:"previousMonthIncome"`
	ExpectedIncome       int64                `json:"expectedIncome"`
	MonthOverMonthGrowth float64              `json:"monthOverMonthGrowth"`
	IncomeByStore        []income.StoreIncome `json:"incomeByStore"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

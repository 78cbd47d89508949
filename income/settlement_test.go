package income_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/shift-engine/income"
)

func doneApprovedWork(id, name, date string, expected int64) income.Work {
	return income.Work{
		ID:                id,
		Name:              name,
		Date:              date,
		ExpectedPay:       expected,
		Status:            income.WorkDone,
		ApplicationStatus: income.ApplicationApproved,
	}
}

// =============================================================================
// APPLICATION SYNC
// =============================================================================

func TestSyncApplications(t *testing.T) {
	jobs := []income.Work{{ID: "101"}, {ID: "102"}}
	apps := income.Applications{
		"101": {Status: income.ApplicationApproved, AppliedDate: "2026-01-10"},
	}

	synced := income.SyncApplications(jobs, apps)

	require.Len(t, synced, 2)
	assert.Equal(t, income.ApplicationApproved, synced[0].ApplicationStatus)
	assert.Equal(t, "2026-01-10", synced[0].AppliedDate)
	assert.Empty(t, synced[1].ApplicationStatus, "jobs without an application pass through untouched")
}

func TestApply_RecordsPendingDatedToday(t *testing.T) {
	today := time.Date(2026, time.January, 12, 9, 30, 0, 0, time.UTC)

	apps := income.Apply(nil, "101", today)

	require.Contains(t, apps, "101")
	assert.Equal(t, income.ApplicationPending, apps["101"].Status)
	assert.Equal(t, "2026-01-12", apps["101"].AppliedDate)
}

func TestUpdateApplicationStatus_KeepsAppliedDate(t *testing.T) {
	apps := income.Applications{
		"101": {Status: income.ApplicationPending, AppliedDate: "2026-01-12"},
	}

	apps = income.UpdateApplicationStatus(apps, "101", income.ApplicationApproved)

	assert.Equal(t, income.ApplicationApproved, apps["101"].Status)
	assert.Equal(t, "2026-01-12", apps["101"].AppliedDate)
}

// =============================================================================
// COMPLETED WORKS AND OVERLAY PRECEDENCE
// =============================================================================

func TestCompletedWorks_FiltersToDoneAndApproved(t *testing.T) {
	jobs := []income.Work{
		doneApprovedWork("1", "카페", "2026-01-05", 40000),
		{ID: "2", Status: income.WorkDone, ApplicationStatus: income.ApplicationPending},
		{ID: "3", Status: income.WorkUpcoming, ApplicationStatus: income.ApplicationApproved},
		{ID: "4", Status: income.WorkDone}, // never applied
	}

	completed := income.CompletedWorks(jobs, nil)

	require.Len(t, completed, 1)
	assert.Equal(t, "1", completed[0].ID)
}

func TestCompletedWorks_ResolvesOverlay(t *testing.T) {
	// GIVEN one work with its own settlement fields and an overlay entry
	w := doneApprovedWork("1", "카페", "2026-01-05", 40000)
	w.SettlementStatus = income.SettlementPending
	w.ActualPay = 38000
	overlay := income.Settlements{
		"1": {Status: income.SettlementCompleted, ActualPay: 41000},
	}

	completed := income.CompletedWorks([]income.Work{w}, overlay)

	// THEN the overlay shadows both fields
	require.Len(t, completed, 1)
	assert.Equal(t, income.SettlementCompleted, completed[0].SettlementStatus)
	assert.Equal(t, int64(41000), completed[0].ActualPay)
}

func TestCompletedWorks_PrecedenceFallsThrough(t *testing.T) {
	// No overlay, no own fields: pending + expected pay.
	w := doneApprovedWork("1", "카페", "2026-01-05", 40000)

	completed := income.CompletedWorks([]income.Work{w}, nil)

	require.Len(t, completed, 1)
	assert.Equal(t, income.SettlementPending, completed[0].SettlementStatus)
	assert.Equal(t, int64(40000), completed[0].ActualPay)

	// Own fields present, still no overlay: the work's own values win.
	w.SettlementStatus = income.SettlementCompleted
	w.ActualPay = 39000
	completed = income.CompletedWorks([]income.Work{w}, income.Settlements{})

	assert.Equal(t, income.SettlementCompleted, completed[0].SettlementStatus)
	assert.Equal(t, int64(39000), completed[0].ActualPay)
}

func TestUpdateSettlement_ZeroPayKeepsPreviousAmount(t *testing.T) {
	s := income.UpdateSettlement(nil, "1", income.SettlementCompleted, 41000)
	assert.Equal(t, int64(41000), s["1"].ActualPay)

	// Re-confirming the status without an amount must not wipe it.
	s = income.UpdateSettlement(s, "1", income.SettlementPending, 0)
	assert.Equal(t, income.SettlementPending, s["1"].Status)
	assert.Equal(t, int64(41000), s["1"].ActualPay)
}

// =============================================================================
// MONTHLY ROLLUPS
// =============================================================================

func TestMonthlyIncome_UsesResolvedPay(t *testing.T) {
	completed := []income.Work{
		doneApprovedWork("1", "카페", "2026-01-05", 40000),
		doneApprovedWork("2", "편의점", "2026-01-20", 55000),
		doneApprovedWork("3", "카페", "2026-02-01", 48000), // out of month
	}
	overlay := income.Settlements{"1": {Status: income.SettlementCompleted, ActualPay: 42000}}

	got := income.MonthlyIncome(completed, overlay, 2026, time.January)

	assert.Equal(t, int64(42000+55000), got)
}

func TestExpectedIncome_IgnoresOverlay(t *testing.T) {
	completed := []income.Work{
		doneApprovedWork("1", "카페", "2026-01-05", 40000),
		doneApprovedWork("2", "편의점", "2026-01-20", 55000),
	}

	assert.Equal(t, int64(95000), income.ExpectedIncome(completed, 2026, time.January))
}

func TestIncomeByStore_GroupsInFirstSeenOrder(t *testing.T) {
	completed := []income.Work{
		doneApprovedWork("1", "카페", "2026-01-05", 40000),
		doneApprovedWork("2", "편의점", "2026-01-10", 55000),
		doneApprovedWork("3", "카페", "2026-01-20", 40000),
	}

	got := income.IncomeByStore(completed, nil, 2026, time.January)

	require.Len(t, got, 2)
	assert.Equal(t, income.StoreIncome{Name: "카페", Value: 80000}, got[0])
	assert.Equal(t, income.StoreIncome{Name: "편의점", Value: 55000}, got[1])
}

func TestMonthOverMonthGrowth(t *testing.T) {
	assert.Equal(t, 0.0, income.MonthOverMonthGrowth(100000, 0), "no previous income defines growth as 0")
	assert.Equal(t, 50.0, income.MonthOverMonthGrowth(150000, 100000))
	assert.Equal(t, -25.0, income.MonthOverMonthGrowth(75000, 100000))
	assert.Equal(t, 0.0, income.MonthOverMonthGrowth(0, 0))
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

func newReportFixture(t *testing.T, orders []entity.Order, expenses []entity.Expense, customers []entity.Customer) *ReportService {
	t.Helper()
	store := session.NewStore(
		&stubOrderRepo{orders: orders},
		&stubCustomerRepo{customers: customers},
		&stubInventoryRepo{},
		&stubExpenseRepo{expenses: expenses},
	)
	require.NoError(t, store.Refresh(context.Background()))
	return NewReportService(store)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("daily", "2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, PeriodDaily, p.Kind)
	assert.Equal(t, 15, p.Day)

	p, err = ParsePeriod("monthly", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, time.August, p.Month)

	p, err = ParsePeriod("yearly", "2026")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)

	_, err = ParsePeriod("weekly", "2026-08-15")
	assert.True(t, apperror.IsValidation(err))

	_, err = ParsePeriod("daily", "15/08/2026")
	assert.True(t, apperror.IsValidation(err))
}

func TestPeriodContains(t *testing.T) {
	daily, _ := ParsePeriod("daily", "2026-08-15")
	assert.True(t, daily.Contains("2026-08-15"))
	assert.False(t, daily.Contains("2026-08-16"))

	monthly, _ := ParsePeriod("monthly", "2026-08")
	assert.True(t, monthly.Contains("2026-08-01"))
	assert.False(t, monthly.Contains("2026-07-31"))

	yearly, _ := ParsePeriod("yearly", "2026")
	assert.True(t, yearly.Contains("2026-01-01"))
	assert.False(t, yearly.Contains("2025-12-31"))
	assert.False(t, yearly.Contains("not-a-date"))
}

func TestBuildReportFiltersAndSums(t *testing.T) {
	svc := newReportFixture(t,
		[]entity.Order{
			{ID: 1, OrderDate: "2026-08-15", Total: 10000, AdvancePaid: 6000, BalanceDue: 4000},
			{ID: 2, OrderDate: "2026-08-15", Total: 5000, AdvancePaid: 5000},
			{ID: 3, OrderDate: "2026-07-01", Total: 9999},
		},
		[]entity.Expense{
			{ID: 1, Date: "2026-08-15", Amount: 2000},
			{ID: 2, Date: "2026-06-01", Amount: 7777},
		},
		nil,
	)

	period, _ := ParsePeriod("daily", "2026-08-15")
	report := svc.BuildReport(period)

	assert.Equal(t, 2, report.OrdersCount)
	assert.Equal(t, int64(15000), report.Revenue)
	assert.Equal(t, int64(11000), report.Collected)
	assert.Equal(t, int64(4000), report.Outstanding)
	assert.Equal(t, int64(2000), report.Expenses)
	assert.Equal(t, int64(13000), report.Net)
}

func TestBuildReportExcludesCancelledFromRevenue(t *testing.T) {
	svc := newReportFixture(t,
		[]entity.Order{
			{ID: 1, OrderDate: "2026-08-15", Total: 10000},
			{ID: 2, OrderDate: "2026-08-15", Total: 5000, Status: enum.OrderStatusCancelled},
		},
		nil, nil,
	)

	period, _ := ParsePeriod("daily", "2026-08-15")
	report := svc.BuildReport(period)

	assert.Equal(t, 2, report.OrdersCount, "cancelled orders still counted")
	assert.Equal(t, int64(10000), report.Revenue)
}

func TestBuildReportMonthlyBuckets(t *testing.T) {
	svc := newReportFixture(t,
		[]entity.Order{
			{ID: 1, OrderDate: "2026-08-03", Total: 1000},
			{ID: 2, OrderDate: "2026-08-03", Total: 2000},
			{ID: 3, OrderDate: "2026-08-20", Total: 500},
		},
		nil, nil,
	)

	period, _ := ParsePeriod("monthly", "2026-08")
	report := svc.BuildReport(period)

	require.Len(t, report.Buckets, 31)
	assert.Equal(t, int64(3000), report.Buckets[2].Revenue)
	assert.Equal(t, 2, report.Buckets[2].Orders)
	assert.Equal(t, int64(500), report.Buckets[19].Revenue)
}

func TestBuildReportYearlyBuckets(t *testing.T) {
	svc := newReportFixture(t,
		[]entity.Order{
			{ID: 1, OrderDate: "2026-02-10", Total: 1000},
			{ID: 2, OrderDate: "2026-11-05", Total: 2000},
		},
		nil, nil,
	)

	period, _ := ParsePeriod("yearly", "2026")
	report := svc.BuildReport(period)

	require.Len(t, report.Buckets, 12)
	assert.Equal(t, "Feb", report.Buckets[1].Label)
	assert.Equal(t, int64(1000), report.Buckets[1].Revenue)
	assert.Equal(t, int64(2000), report.Buckets[10].Revenue)
}

func TestBuildReportCountsNewCustomers(t *testing.T) {
	svc := newReportFixture(t, nil, nil, []entity.Customer{
		{ID: 1, Name: "Anita", CreatedAt: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Priya", CreatedAt: time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)},
	})

	period, _ := ParsePeriod("monthly", "2026-08")
	report := svc.BuildReport(period)

	assert.Equal(t, 1, report.NewCustomers)
}

package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// PeriodKind selects the reporting window granularity.
type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
)

// Period is a concrete reporting window. Day and Month are ignored for
// coarser kinds.
type Period struct {
	Kind  PeriodKind
	Year  int
	Month time.Month
	Day   int
}

// ParsePeriod builds a Period from query parameters. The date argument
// is YYYY-MM-DD for daily, YYYY-MM for monthly and YYYY for yearly.
func ParsePeriod(kind, date string) (Period, error) {
	var layout string
	switch PeriodKind(kind) {
	case PeriodDaily:
		layout = "2006-01-02"
	case PeriodMonthly:
		layout = "2006-01"
	case PeriodYearly:
		layout = "2006"
	default:
		return Period{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: "period", Message: "must be daily, monthly or yearly"},
		})
	}
	t, err := time.Parse(layout, date)
	if err != nil {
		return Period{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: "date", Message: fmt.Sprintf("must match %s", layout)},
		})
	}
	return Period{Kind: PeriodKind(kind), Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Contains reports whether a YYYY-MM-DD date string falls inside the
// period. Unparseable dates are excluded.
func (p Period) Contains(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	if t.Year() != p.Year {
		return false
	}
	switch p.Kind {
	case PeriodDaily:
		return t.Month() == p.Month && t.Day() == p.Day
	case PeriodMonthly:
		return t.Month() == p.Month
	default:
		return true
	}
}

// Bucket is one bar of the report chart: an hour of the day, a day of
// the month or a month of the year depending on the period kind.
type Bucket struct {
	Label   string `json:"label"`
	Revenue int64  `json:"-"`
	Orders  int    `json:"orders"`
}

// MarshalJSON renders the bucket revenue in currency units.
func (b Bucket) MarshalJSON() ([]byte, error) {
	type alias Bucket
	return json.Marshal(struct {
		alias
		Revenue float64 `json:"revenue"`
	}{
		alias:   alias(b),
		Revenue: float64(b.Revenue) / 100,
	})
}

// Report is a sales summary for one period. Monetary fields are in
// cents.
type Report struct {
	Period       string           `json:"period"`
	Date         string           `json:"date"`
	Revenue      int64            `json:"-"`
	Collected    int64            `json:"-"`
	Outstanding  int64            `json:"-"`
	Expenses     int64            `json:"-"`
	Net          int64            `json:"-"`
	OrdersCount  int              `json:"orders_count"`
	NewCustomers int              `json:"new_customers"`
	Buckets      []Bucket         `json:"chart"`
	Orders       []entity.Order   `json:"orders"`
	ExpenseItems []entity.Expense `json:"expenses_list"`
}

// MarshalJSON renders the cent fields in currency units.
func (r Report) MarshalJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(struct {
		alias
		Revenue     float64 `json:"revenue"`
		Collected   float64 `json:"collected"`
		Outstanding float64 `json:"outstanding"`
		Expenses    float64 `json:"expenses"`
		Net         float64 `json:"net"`
	}{
		alias:       alias(r),
		Revenue:     float64(r.Revenue) / 100,
		Collected:   float64(r.Collected) / 100,
		Outstanding: float64(r.Outstanding) / 100,
		Expenses:    float64(r.Expenses) / 100,
		Net:         float64(r.Net) / 100,
	})
}

// ReportService aggregates cached orders and expenses into period
// summaries. Cancelled orders are excluded from revenue.
type ReportService struct {
	store *session.Store
}

func NewReportService(store *session.Store) *ReportService {
	return &ReportService{store: store}
}

// BuildReport assembles the report for one period from the cache.
func (s *ReportService) BuildReport(period Period) *Report {
	report := &Report{
		Period:  string(period.Kind),
		Date:    period.label(),
		Buckets: period.emptyBuckets(),
	}

	for _, order := range s.store.Orders() {
		if !period.Contains(order.OrderDate) {
			continue
		}
		report.Orders = append(report.Orders, order)
		report.OrdersCount++
		if order.Status == enum.OrderStatusCancelled {
			continue
		}
		report.Revenue += order.Total
		report.Collected += order.AdvancePaid
		report.Outstanding += order.BalanceDue
		if idx, ok := period.bucketIndex(order.OrderDate); ok {
			report.Buckets[idx].Revenue += order.Total
			report.Buckets[idx].Orders++
		}
	}

	for _, expense := range s.store.Expenses() {
		if !period.Contains(expense.Date) {
			continue
		}
		report.ExpenseItems = append(report.ExpenseItems, expense)
		report.Expenses += expense.Amount
	}
	report.Net = report.Revenue - report.Expenses

	for _, customer := range s.store.Customers() {
		if period.Contains(customer.CreatedAt.Format("2006-01-02")) {
			report.NewCustomers++
		}
	}
	return report
}

func (p Period) label() string {
	switch p.Kind {
	case PeriodDaily:
		return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
	case PeriodMonthly:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}

func (p Period) emptyBuckets() []Bucket {
	switch p.Kind {
	case PeriodDaily:
		// Each order is its own bucket for a single day; the chart is
		// built lazily in bucketIndex.
		return nil
	case PeriodMonthly:
		days := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		buckets := make([]Bucket, days)
		for i := range buckets {
			buckets[i].Label = fmt.Sprintf("%02d", i+1)
		}
		return buckets
	default:
		buckets := make([]Bucket, 12)
		for i := range buckets {
			buckets[i].Label = time.Month(i + 1).String()[:3]
		}
		return buckets
	}
}

func (p Period) bucketIndex(date string) (int, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	switch p.Kind {
	case PeriodMonthly:
		return t.Day() - 1, true
	case PeriodYearly:
		return int(t.Month()) - 1, true
	default:
		return 0, false
	}
}

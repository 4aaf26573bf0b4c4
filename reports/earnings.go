package reports

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TotalAcceptedWorkHours sums work_hours over accepted appointments. An
// empty set yields zero, not an error.
func (r *Reports) TotalAcceptedWorkHours() (decimal.Decimal, error) {
	rows, err := r.acceptedPayRows()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.WorkHours)
	}
	return total, nil
}

// AverageAcceptedPay computes the average of hourly_rate x work_hours over
// accepted appointments. ok is false when no accepted appointments exist.
func (r *Reports) AverageAcceptedPay() (avg decimal.Decimal, ok bool, err error) {
	rows, err := r.acceptedPayRows()
	if err != nil {
		return decimal.Zero, false, err
	}
	if len(rows) == 0 {
		return decimal.Zero, false, nil
	}
	return averagePay(rows), true, nil
}

// CaregiverEarnings is one caregiver's total over accepted appointments.
type CaregiverEarnings struct {
	CaregiverName string          `json:"caregiver_name"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

// EarningsReport distinguishes two empty outcomes: no accepted appointments
// at all (HasAccepted false), and accepted appointments with nobody above
// the average (HasAccepted true, empty AboveAverage).
type EarningsReport struct {
	HasAccepted  bool                `json:"has_accepted"`
	Average      decimal.Decimal     `json:"average"`
	AboveAverage []CaregiverEarnings `json:"above_average"`
}

// AboveAverageEarnings groups accepted appointments by caregiver, sums each
// caregiver's rate x hours, and keeps those strictly above the per-row
// average, ordered descending by total.
func (r *Reports) AboveAverageEarnings() (EarningsReport, error) {
	rows, err := r.acceptedPayRows()
	if err != nil {
		return EarningsReport{}, err
	}
	return computeAboveAverage(rows), nil
}

// CostLineItem is one accepted appointment's derived cost.
type CostLineItem struct {
	AppointmentID uint            `json:"appointment_id"`
	CaregiverName string          `json:"caregiver_name"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	WorkHours     decimal.Decimal `json:"work_hours"`
	Cost          decimal.Decimal `json:"cost"`
}

// CostReport carries the per-appointment cost lines and their grand total.
// An empty Items slice means no accepted appointments were found; the total
// is zero in that case.
type CostReport struct {
	Items      []CostLineItem  `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// AcceptedCostLineItems derives hourly_rate x work_hours per accepted
// appointment and the grand total across all of them.
func (r *Reports) AcceptedCostLineItems() (CostReport, error) {
	rows, err := r.acceptedPayRows()
	if err != nil {
		return CostReport{}, err
	}
	return computeCosts(rows), nil
}

func averagePay(rows []acceptedPay) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.HourlyRate.Mul(row.WorkHours))
	}
	return sum.Div(decimal.NewFromInt(int64(len(rows))))
}

func computeAboveAverage(rows []acceptedPay) EarningsReport {
	report := EarningsReport{AboveAverage: []CaregiverEarnings{}}
	if len(rows) == 0 {
		return report
	}
	report.HasAccepted = true
	report.Average = averagePay(rows)

	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		totals[row.CaregiverName] = totals[row.CaregiverName].Add(row.HourlyRate.Mul(row.WorkHours))
	}
	for name, total := range totals {
		if total.GreaterThan(report.Average) {
			report.AboveAverage = append(report.AboveAverage, CaregiverEarnings{
				CaregiverName: name,
				TotalEarnings: total,
			})
		}
	}
	sort.Slice(report.AboveAverage, func(i, j int) bool {
		a, b := report.AboveAverage[i], report.AboveAverage[j]
		if !a.TotalEarnings.Equal(b.TotalEarnings) {
			return a.TotalEarnings.GreaterThan(b.TotalEarnings)
		}
		return a.CaregiverName < b.CaregiverName
	})
	return report
}

func computeCosts(rows []acceptedPay) CostReport {
	report := CostReport{Items: []CostLineItem{}, GrandTotal: decimal.Zero}
	for _, row := range rows {
		cost := row.HourlyRate.Mul(row.WorkHours)
		report.Items = append(report.Items, CostLineItem{
			AppointmentID: row.AppointmentID,
			CaregiverName: row.CaregiverName,
			HourlyRate:    row.HourlyRate,
			WorkHours:     row.WorkHours,
			Cost:          cost,
		})
		report.GrandTotal = report.GrandTotal.Add(cost)
	}
	return report
}

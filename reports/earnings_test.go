package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pay(id uint, name, rate, hours string) acceptedPay {
	return acceptedPay{
		AppointmentID: id,
		CaregiverName: name,
		HourlyRate:    decimal.RequireFromString(rate),
		WorkHours:     decimal.RequireFromString(hours),
	}
}

func TestAveragePay(t *testing.T) {
	rows := []acceptedPay{
		pay(1, "Arman Armanov", "8.50", "3"),
		pay(2, "David Kim", "9.00", "4"),
		pay(3, "Farid Aliyev", "12.00", "5"),
		pay(4, "Irina Petrova", "10.00", "3.5"),
	}
	// (25.50 + 36 + 60 + 35) / 4
	assert.Equal(t, "39.13", averagePay(rows).StringFixed(2))
}

func TestComputeAboveAverage(t *testing.T) {
	rows := []acceptedPay{
		pay(1, "Arman Armanov", "8.50", "3"),
		pay(2, "David Kim", "9.00", "4"),
		pay(3, "Farid Aliyev", "12.00", "5"),
		pay(4, "Irina Petrova", "10.00", "3.5"),
		pay(5, "Kate Brown", "11.50", "6"),
		pay(6, "Michael Chen", "9.50", "2.5"),
		pay(7, "Rosa Garcia", "10.50", "4"),
		pay(8, "Tina Muller", "13.00", "5.5"),
		pay(9, "Arman Armanov", "8.50", "3"),
		pay(10, "Farid Aliyev", "12.00", "4"),
	}

	report := computeAboveAverage(rows)
	assert.True(t, report.HasAccepted)
	assert.Equal(t, "43.63", report.Average.StringFixed(2)) // 436.25 / 10

	require.Len(t, report.AboveAverage, 4)
	assert.Equal(t, "Farid Aliyev", report.AboveAverage[0].CaregiverName)
	assert.Equal(t, "108.00", report.AboveAverage[0].TotalEarnings.StringFixed(2))
	assert.Equal(t, "Tina Muller", report.AboveAverage[1].CaregiverName)
	assert.Equal(t, "Kate Brown", report.AboveAverage[2].CaregiverName)
	assert.Equal(t, "Arman Armanov", report.AboveAverage[3].CaregiverName)
	assert.Equal(t, "51.00", report.AboveAverage[3].TotalEarnings.StringFixed(2))
}

func TestComputeAboveAverageEmpty(t *testing.T) {
	report := computeAboveAverage(nil)
	assert.False(t, report.HasAccepted)
	assert.True(t, report.Average.IsZero())
	assert.Empty(t, report.AboveAverage)
}

func TestComputeAboveAverageNobodyAbove(t *testing.T) {
	// Every caregiver earns exactly the average, so nobody is strictly above.
	rows := []acceptedPay{
		pay(1, "Arman Armanov", "10.00", "2"),
		pay(2, "David Kim", "10.00", "2"),
	}
	report := computeAboveAverage(rows)
	assert.True(t, report.HasAccepted)
	assert.Equal(t, "20.00", report.Average.StringFixed(2))
	assert.Empty(t, report.AboveAverage)
}

func TestComputeAboveAverageTieBreak(t *testing.T) {
	rows := []acceptedPay{
		pay(1, "Zara Lee", "20.00", "2"),
		pay(2, "Anna Ives", "20.00", "2"),
		pay(3, "Mona Ray", "1.00", "1"),
	}
	report := computeAboveAverage(rows)
	require.Len(t, report.AboveAverage, 2)
	assert.Equal(t, "Anna Ives", report.AboveAverage[0].CaregiverName)
	assert.Equal(t, "Zara Lee", report.AboveAverage[1].CaregiverName)
}

func TestComputeCosts(t *testing.T) {
	rows := []acceptedPay{
		pay(1, "Arman Armanov", "8.50", "3"),
		pay(2, "Kate Brown", "11.50", "6"),
	}
	report := computeCosts(rows)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "25.50", report.Items[0].Cost.StringFixed(2))
	assert.Equal(t, "69.00", report.Items[1].Cost.StringFixed(2))
	assert.Equal(t, "94.50", report.GrandTotal.StringFixed(2))
}

func TestComputeCostsEmpty(t *testing.T) {
	report := computeCosts(nil)
	assert.Empty(t, report.Items)
	assert.True(t, report.GrandTotal.IsZero())
}

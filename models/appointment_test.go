package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointment() Appointment {
	return Appointment{
		CaregiverUserID: 1,
		MemberUserID:    2,
		AppointmentDate: NewDate(2024, 3, 15),
		AppointmentTime: "10:00",
		WorkHours:       decimal.RequireFromString("3.00"),
		Status:          StatusPending,
	}
}

func TestAppointmentValidate(t *testing.T) {
	valid := validAppointment()
	assert.NoError(t, valid.Validate())

	badStatus := validAppointment()
	badStatus.Status = "cancelled"
	assert.Error(t, badStatus.Validate())

	badTime := validAppointment()
	badTime.AppointmentTime = "25:99"
	assert.Error(t, badTime.Validate())

	badTime.AppointmentTime = "morning"
	assert.Error(t, badTime.Validate())

	negative := validAppointment()
	negative.WorkHours = decimal.RequireFromString("-2")
	assert.Error(t, negative.Validate())
}

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusAccepted.Valid())
	assert.True(t, StatusDeclined.Valid())
	assert.False(t, AppointmentStatus("done").Valid())
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 3, 15)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-02"`), &parsed))
	assert.Equal(t, "2024-01-02", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, v)
}

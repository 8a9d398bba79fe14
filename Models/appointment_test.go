package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionFromPending(t *testing.T) {
	appointment := Appointment{Status: StatusPending}
	assert.NoError(t, appointment.Transition("confirm"))
	assert.Equal(t, StatusConfirmed, appointment.Status)

	appointment = Appointment{Status: StatusPending}
	assert.NoError(t, appointment.Transition("reject"))
	assert.Equal(t, StatusRejected, appointment.Status)
}

func TestTransitionTerminalStates(t *testing.T) {
	for _, status := range []string{StatusConfirmed, StatusRejected, StatusCompleted} {
		for _, action := range []string{"confirm", "reject"} {
			appointment := Appointment{Status: status}
			err := appointment.Transition(action)
			assert.Error(t, err, "%s from %s must be rejected", action, status)
			assert.Equal(t, status, appointment.Status, "status must not change")
		}
	}
}

func TestTransitionUnknownAction(t *testing.T) {
	appointment := Appointment{Status: StatusPending}
	assert.Error(t, appointment.Transition("complete"))
	assert.Equal(t, StatusPending, appointment.Status)
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusRejected} {
		assert.True(t, ValidStatus(status))
	}
	assert.False(t, ValidStatus("Cancelled"))
	assert.False(t, ValidStatus(""))
}

func TestValidGender(t *testing.T) {
	for _, gender := range []string{GenderMale, GenderFemale, GenderOther} {
		assert.True(t, ValidGender(gender))
	}
	assert.False(t, ValidGender("male"))
	assert.False(t, ValidGender(""))
}

func TestFullName(t *testing.T) {
	user := User{FirstName: "Alice", LastName: "Smith"}
	assert.Equal(t, "Alice Smith", user.FullName())

	user = User{}
	assert.Equal(t, "", user.FullName())

	user = User{FirstName: "Alice"}
	assert.Equal(t, "Alice", user.FullName())
}

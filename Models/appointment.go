package Models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusRejected  = "Rejected"
)

// Appointment binds one Patient and one Doctor at a point in time. Status
// starts at Pending and only the assigned doctor moves it from there.
type Appointment struct {
	gorm.Model
	PatientID uint      `json:"patient_id"`
	Patient   Patient   `json:"patient"`
	DoctorID  uint      `json:"doctor_id"`
	Doctor    Doctor    `json:"doctor"`
	DateTime  time.Time `json:"date_time"`
	Status    string    `json:"status" gorm:"default:Pending"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Transition applies a confirm/reject action. Confirmed and Rejected are
// terminal; nothing drives Confirmed to Completed.
func (appointment *Appointment) Transition(action string) error {
	if appointment.Status != StatusPending {
		return fmt.Errorf("cannot %s an appointment that is %s", action, appointment.Status)
	}
	switch action {
	case "confirm":
		appointment.Status = StatusConfirmed
	case "reject":
		appointment.Status = StatusRejected
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func GetAppointmentByID(id uint) (Appointment, error) {
	var appointment Appointment
	if err := DB.Preload("Patient.User").Preload("Doctor.User").First(&appointment, id).Error; err != nil {
		return appointment, err
	}
	appointment.Patient.User.PrepareGive()
	appointment.Doctor.User.PrepareGive()
	return appointment, nil
}

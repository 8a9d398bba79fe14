package Controllers

import (
	"net/http"
	"time"

	"MediCarePro/Middleware"
	"MediCarePro/Models"
	"MediCarePro/Permissions"
	"MediCarePro/Reports"

	"github.com/gin-gonic/gin"
)

// Dashboard dispatches on the caller's role. Admin wins over the profile
// roles; a doctor-patient dual account sees the patient view first, matching
// the signup flow where every self-registered account is a patient.
func Dashboard(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)

	switch {
	case principal.User.IsAdmin:
		adminDashboard(c)
	case principal.User.IsPatient && principal.PatientID != 0:
		patientDashboard(c, principal)
	case principal.User.IsDoctor && principal.DoctorID != 0:
		doctorDashboard(c, principal)
	default:
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
	}
}

func patientDashboard(c *gin.Context, principal Permissions.Principal) {
	patient, err := Models.GetPatientByID(principal.PatientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var appointments []Models.Appointment
	if err := Models.DB.Preload("Doctor.User").Where("patient_id = ?", patient.ID).Order("date_time desc").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var records []Models.MedicalRecord
	if err := Models.DB.Preload("Doctor.User").Where("patient_id = ?", patient.ID).Order("created_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":         "patient",
		"patient":      patient,
		"appointments": appointments,
		"records":      records,
	})
}

func doctorDashboard(c *gin.Context, principal Permissions.Principal) {
	doctor, err := Models.GetDoctorByID(principal.DoctorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	var appointments []Models.Appointment
	if err := Models.DB.Preload("Patient.User").Where("doctor_id = ?", doctor.ID).Order("date_time desc").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Patients this doctor has treated, via their appointments.
	var patients []Models.Patient
	if err := Models.DB.Preload("User").
		Where("id IN (?)", Models.DB.Model(&Models.Appointment{}).Select("patient_id").Where("doctor_id = ?", doctor.ID)).
		Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for index := range patients {
		patients[index].User.PrepareGive()
	}

	var records []Models.MedicalRecord
	if err := Models.DB.Preload("Patient.User").
		Where("patient_id IN (?)", Models.DB.Model(&Models.Appointment{}).Select("patient_id").Where("doctor_id = ?", doctor.ID)).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":         "doctor",
		"doctor":       doctor,
		"appointments": appointments,
		"patients":     patients,
		"records":      records,
	})
}

func adminDashboard(c *gin.Context) {
	var totalPatients, totalDoctors, totalAppointments int64
	if err := Models.DB.Model(&Models.Patient{}).Count(&totalPatients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Model(&Models.Doctor{}).Count(&totalDoctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Model(&Models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var todaysAppointments []Models.Appointment
	if err := Models.DB.Preload("Patient.User").Preload("Doctor.User").
		Where("date_time >= ? AND date_time < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Find(&todaysAppointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Chart data is recomputed from the full collection on every view.
	var appointments []Models.Appointment
	if err := Models.DB.Order("date_time asc").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":                 "admin",
		"total_patients":       totalPatients,
		"doctors_count":        totalDoctors,
		"total_appointments":   totalAppointments,
		"todays_appointments":  todaysAppointments,
		"status_counts":        Reports.CountByStatus(appointments),
		"monthly_appointments": Reports.CountByMonth(appointments),
	})
}

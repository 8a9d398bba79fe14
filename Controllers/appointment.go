package Controllers

import (
	"net/http"
	"time"

	"MediCarePro/Middleware"
	"MediCarePro/Models"
	"MediCarePro/Permissions"

	"github.com/gin-gonic/gin"
)

// FetchAppointments lists what the caller may see: patients their own,
// doctors their own, admins everything.
func FetchAppointments(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)

	query := Models.DB.Preload("Patient.User").Preload("Doctor.User").Order("date_time desc")
	switch {
	case principal.User.IsAdmin:
		// no filter
	case principal.User.IsPatient:
		query = query.Where("patient_id = ?", principal.PatientID)
	case principal.User.IsDoctor:
		query = query.Where("doctor_id = ?", principal.DoctorID)
	default:
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	var appointments []Models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for index := range appointments {
		appointments[index].Patient.User.PrepareGive()
		appointments[index].Doctor.User.PrepareGive()
	}
	c.JSON(http.StatusOK, appointments)
}

type AppointmentInput struct {
	DoctorID  uint      `json:"doctor_id"`
	PatientID uint      `json:"patient_id"`
	DateTime  time.Time `json:"date_time" binding:"required"`
}

// CreateAppointment books a visit. A patient books for themselves with a
// chosen doctor; a doctor books on behalf of a patient. Either way the
// appointment starts Pending.
func CreateAppointment(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment := Models.Appointment{
		DateTime: input.DateTime,
		Status:   Models.StatusPending,
	}

	switch {
	case principal.User.IsPatient && principal.PatientID != 0:
		if input.DoctorID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id is required"})
			return
		}
		if err := Models.DB.First(&Models.Doctor{}, input.DoctorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		appointment.PatientID = principal.PatientID
		appointment.DoctorID = input.DoctorID
	case principal.User.IsDoctor && principal.DoctorID != 0:
		if input.PatientID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id is required"})
			return
		}
		if err := Models.DB.First(&Models.Patient{}, input.PatientID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		appointment.DoctorID = principal.DoctorID
		appointment.PatientID = input.PatientID
	default:
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	if err := Models.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Appointment created successfully.",
		"appointment_id": appointment.ID,
		"status":         appointment.Status,
	})
}

func AppointmentDetail(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	appointment, err := Models.GetAppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanViewAppointment(principal, appointment) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment reschedules. Only the owning patient or the assigned
// doctor may touch it; the status is not editable here.
func UpdateAppointment(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	var appointment Models.Appointment
	if err := Models.DB.First(&appointment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanEditAppointment(principal, appointment) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment.DateTime = input.DateTime
	if input.DoctorID != 0 && input.DoctorID != appointment.DoctorID {
		if err := Models.DB.First(&Models.Doctor{}, input.DoctorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		appointment.DoctorID = input.DoctorID
	}

	if err := Models.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully."})
}

func ConfirmAppointment(c *gin.Context) {
	transitionAppointment(c, "confirm")
}

func RejectAppointment(c *gin.Context) {
	transitionAppointment(c, "reject")
}

func transitionAppointment(c *gin.Context, action string) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	var appointment Models.Appointment
	if err := Models.DB.First(&appointment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanTransitionAppointment(principal, appointment) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	if err := appointment.Transition(action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Single-column update keeps the transition an atomic row write.
	if err := Models.DB.Model(&Models.Appointment{}).Where("id = ?", appointment.ID).Update("status", appointment.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment " + appointment.Status + " successfully.", "status": appointment.Status})
}

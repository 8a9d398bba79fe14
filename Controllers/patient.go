package Controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"MediCarePro/Middleware"
	"MediCarePro/Models"
	"MediCarePro/Permissions"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func FetchPatients(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)

	switch Permissions.ListPatients(principal) {
	case Permissions.RedirectDashboard:
		// A patient asking for the roster lands on their own profile.
		c.Redirect(http.StatusFound, fmt.Sprintf("/api/protected/patients/%d", principal.PatientID))
		return
	case Permissions.Forbid:
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	var patients []Models.Patient
	if err := Models.DB.Preload("User").Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for index := range patients {
		patients[index].User.PrepareGive()
	}
	c.JSON(http.StatusOK, patients)
}

type PatientInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// CreatePatient lets a doctor or an admin register a patient, account and
// profile in one transaction.
func CreatePatient(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanManagePatients(principal) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	var input PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Gender == "" {
		input.Gender = Models.GenderMale
	}
	if !Models.ValidGender(input.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: gender must be Male, Female or Other"})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	user := Models.User{
		Username:  input.Username,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IsPatient: true,
	}
	if _, err := user.SaveUser(tx); err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := Models.Patient{
		UserID: user.ID,
		Phone:  input.Phone,
		Age:    input.Age,
		Gender: input.Gender,
	}
	if err := tx.Create(&patient).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient added successfully", "patient_id": patient.ID})
}

// PatientProfile serves a patient's profile to doctors and admins. The owning
// patient is redirected to the dashboard instead; any other patient gets
// Forbidden.
func PatientProfile(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	patient, err := Models.GetPatientByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	switch Permissions.ViewPatientProfile(principal, patient) {
	case Permissions.RedirectDashboard:
		c.Redirect(http.StatusFound, "/api/protected/dashboard")
		return
	case Permissions.Forbid:
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	var records []Models.MedicalRecord
	if err := Models.DB.Preload("Doctor.User").Where("patient_id = ?", patient.ID).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var appointments []Models.Appointment
	if err := Models.DB.Preload("Doctor.User").Where("patient_id = ?", patient.ID).Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient":      patient,
		"records":      records,
		"appointments": appointments,
	})
}

func UpdatePatient(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	var input struct {
		Phone  string `json:"phone"`
		Age    int    `json:"age"`
		Gender string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !Models.ValidGender(input.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: gender must be Male, Female or Other"})
		return
	}

	var patient Models.Patient
	if err := Models.DB.First(&patient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanEditPatientProfile(principal, patient) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	patient.Phone = input.Phone
	patient.Age = input.Age
	patient.Gender = input.Gender

	if err := Models.DB.Save(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

// DeletePatient removes the profile and the owning account in one
// transaction, so the account can no longer authenticate.
func DeletePatient(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanManagePatients(principal) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	var patient Models.Patient
	if err := Models.DB.First(&patient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var user Models.User
	if err := Models.DB.First(&user, patient.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Associated user not found"})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(&patient).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient"})
		return
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted."})
}

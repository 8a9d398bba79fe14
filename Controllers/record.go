package Controllers

import (
	"fmt"
	"net/http"

	"MediCarePro/Documents"
	"MediCarePro/Middleware"
	"MediCarePro/Models"
	"MediCarePro/Permissions"

	"github.com/gin-gonic/gin"
)

// CreateRecord adds a doctor's note to a patient. The acting doctor becomes
// the author.
func CreateRecord(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanCreateRecord(principal) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	patientID, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	if err := Models.DB.First(&Models.Patient{}, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	var input struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctorID := principal.DoctorID
	record := Models.MedicalRecord{
		PatientID:   patientID,
		DoctorID:    &doctorID,
		Description: input.Description,
	}

	if err := Models.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medical record added successfully.", "record_id": record.ID})
}

// FetchRecords lists every record, newest first. Admin only.
func FetchRecords(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanListRecords(principal) {
		c.String(http.StatusForbidden, "Only admin can access all medical records.")
		return
	}

	var records []Models.MedicalRecord
	if err := Models.DB.Preload("Patient.User").Preload("Doctor.User").Order("created_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for index := range records {
		records[index].Patient.User.PrepareGive()
		if records[index].Doctor != nil {
			records[index].Doctor.User.PrepareGive()
		}
	}
	c.JSON(http.StatusOK, records)
}

func DeleteRecord(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	var record Models.MedicalRecord
	if err := Models.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanDeleteRecord(principal, record) {
		c.String(http.StatusForbidden, "You cannot delete another doctor's note.")
		return
	}

	if err := Models.DB.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medical record deleted successfully."})
}

// ExportRecordPDF streams the record as an application/pdf attachment.
func ExportRecordPDF(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	record, err := Models.GetMedicalRecordByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	principal, _ := Middleware.GetPrincipal(c)
	if !Permissions.CanExportRecord(principal, record) {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	document, err := Documents.RenderRecordPDF(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Documents.RecordFilename(record)))
	c.Data(http.StatusOK, "application/pdf", document)
}

package Models

import (
	"gorm.io/gorm"
)

// MedicalRecord is a doctor-authored note about a patient. DoctorID is
// nullable: removing the authoring doctor keeps the record and clears the
// authorship. CreatedAt is set once at insert and never updated.
type MedicalRecord struct {
	gorm.Model
	PatientID   uint    `json:"patient_id"`
	Patient     Patient `json:"patient"`
	DoctorID    *uint   `json:"doctor_id"`
	Doctor      *Doctor `json:"doctor"`
	Description string  `json:"description"`
}

func GetMedicalRecordByID(id uint) (MedicalRecord, error) {
	var record MedicalRecord
	if err := DB.Preload("Patient.User").Preload("Doctor.User").First(&record, id).Error; err != nil {
		return record, err
	}
	record.Patient.User.PrepareGive()
	if record.Doctor != nil {
		record.Doctor.User.PrepareGive()
	}
	return record, nil
}

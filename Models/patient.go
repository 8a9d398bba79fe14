package Models

import (
	"errors"

	"gorm.io/gorm"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient is the role profile extending a User with IsPatient set. Exactly
// one Patient row exists per such user; deleting a Patient also deletes the
// owning User (see Controllers.DeletePatient).
type Patient struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex" json:"user_id"`
	User   User   `json:"user"`
	Phone  string `json:"phone"`
	Age    int    `json:"age"`
	Gender string `json:"gender" gorm:"default:Male"`
}

func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func GetPatientByID(id uint) (Patient, error) {
	var patient Patient
	if err := DB.Preload("User").First(&patient, id).Error; err != nil {
		return patient, errors.New("Patient not found")
	}
	patient.User.PrepareGive()
	return patient, nil
}

func GetPatientByUserID(uid uint) (Patient, error) {
	var patient Patient
	if err := DB.Preload("User").Where("user_id = ?", uid).First(&patient).Error; err != nil {
		return patient, errors.New("Patient not found")
	}
	patient.User.PrepareGive()
	return patient, nil
}

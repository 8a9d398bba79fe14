package Models

import (
	"errors"

	"gorm.io/gorm"
)

// Doctor is the role profile extending a User with IsDoctor set. Exactly one
// Doctor row exists per such user.
type Doctor struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex" json:"user_id"`
	User           User   `json:"user"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Experience     int    `json:"experience"`
	Bio            string `json:"bio"`
	ClinicAddress  string `json:"clinic_address"`
	Timings        string `json:"timings"`
}

func GetDoctorByID(id uint) (Doctor, error) {
	var doctor Doctor
	if err := DB.Preload("User").First(&doctor, id).Error; err != nil {
		return doctor, errors.New("Doctor not found")
	}
	doctor.User.PrepareGive()
	return doctor, nil
}

func GetDoctorByUserID(uid uint) (Doctor, error) {
	var doctor Doctor
	if err := DB.Preload("User").Where("user_id = ?", uid).First(&doctor).Error; err != nil {
		return doctor, errors.New("Doctor not found")
	}
	doctor.User.PrepareGive()
	return doctor, nil
}

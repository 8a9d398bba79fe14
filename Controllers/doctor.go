package Controllers

import (
	"log"
	"net/http"

	"MediCarePro/Models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// FetchDoctors is the public directory.
func FetchDoctors(c *gin.Context) {
	var doctors []Models.Doctor
	if err := Models.DB.Preload("User").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for index := range doctors {
		doctors[index].User.PrepareGive()
	}
	c.JSON(http.StatusOK, doctors)
}

func DoctorProfile(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	doctor, err := Models.GetDoctorByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

type RegisterDoctorInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// RegisterDoctor creates the doctor account and its profile from one request
// body. Admin only (enforced on the route).
func RegisterDoctor(c *gin.Context) {
	var input RegisterDoctorInput
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		log.Println(err)
		c.String(http.StatusBadRequest, "Bad Request")
		c.Abort()
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
		IsDoctor:  true,
	}
	if _, err := user.SaveUser(tx); err != nil {
		log.Println(err)
		tx.Rollback()
		c.String(http.StatusBadRequest, "Failed To Register User")
		c.Abort()
		return
	}

	var doctor Models.Doctor
	if err := c.ShouldBindBodyWith(&doctor, binding.JSON); err != nil {
		log.Println(err.Error())
		tx.Rollback()
		c.JSON(http.StatusBadRequest, err)
		return
	}
	doctor.UserID = user.ID
	doctor.User = Models.User{}
	if err := tx.Create(&doctor).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusBadRequest, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registered Successfully", "doctor_id": doctor.ID})
}

// DeleteDoctor removes the doctor profile and its account. Medical records
// authored by the doctor keep their rows with the authorship cleared.
func DeleteDoctor(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	var doctor Models.Doctor
	if err := Models.DB.First(&doctor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	var user Models.User
	if err := Models.DB.First(&user, doctor.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Associated user not found"})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&Models.MedicalRecord{}).Where("doctor_id = ?", doctor.ID).Update("doctor_id", nil).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach medical records"})
		return
	}

	if err := tx.Delete(&doctor).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
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

	c.JSON(http.StatusOK, gin.H{"message": "Doctor and associated user deleted successfully"})
}

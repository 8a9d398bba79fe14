package Controllers

import (
	"net/http"

	"MediCarePro/Middleware"
	"MediCarePro/Models"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, token, err := Models.LoginCheck(input.Username, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username or password is incorrect."})
		return
	}

	user, _ := Models.GetUserByID(uid)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login Successful",
		"jwt":        token,
		"is_doctor":  user.IsDoctor,
		"is_patient": user.IsPatient,
		"is_admin":   user.IsAdmin,
	})
}

type SignupInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Signup registers a patient account. The patient profile is created in the
// same transaction with empty phone, age 0 and gender Other; the patient
// fills these in later.
func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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
		Phone:  "",
		Age:    0,
		Gender: Models.GenderOther,
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

	c.JSON(http.StatusOK, gin.H{"message": "Account created successfully"})
}

func CurrentUser(c *gin.Context) {
	principal, ok := Middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user := principal.User
	user.PrepareGive()
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": user})
}

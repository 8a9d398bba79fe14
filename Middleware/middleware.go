package Middleware

import (
	"net/http"

	"MediCarePro/Models"
	"MediCarePro/Permissions"
	"MediCarePro/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetPrincipal loads the acting user and the profile ids it owns into the
// context for the permission checks downstream.
func SetPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Token.ExtractTokenID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := Models.GetUserByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		principal := Permissions.Principal{User: user}
		if user.IsDoctor {
			if doctor, err := Models.GetDoctorByUserID(user.ID); err == nil {
				principal.DoctorID = doctor.ID
			}
		}
		if user.IsPatient {
			if patient, err := Models.GetPatientByUserID(user.ID); err == nil {
				principal.PatientID = patient.ID
			}
		}

		c.Set("principal", principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by SetPrincipal.
func GetPrincipal(c *gin.Context) (Permissions.Principal, bool) {
	value, exists := c.Get("principal")
	if !exists {
		return Permissions.Principal{}, false
	}
	principal, ok := value.(Permissions.Principal)
	return principal, ok
}

// RequireAdmin gates routes that only staff accounts may reach.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.User.IsAdmin {
			c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}

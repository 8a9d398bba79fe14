package Routes

import (
	"MediCarePro/Controllers"
	"MediCarePro/Middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/signup", Controllers.Signup)
		public.GET("/doctors", Controllers.FetchDoctors)
		public.GET("/doctors/:id", Controllers.DoctorProfile)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.SetPrincipal())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.GET("/dashboard", Controllers.Dashboard)

		// Patient-related routes
		authorized.GET("/patients", Controllers.FetchPatients)
		authorized.POST("/patients", Controllers.CreatePatient)
		authorized.GET("/patients/:id", Controllers.PatientProfile)
		authorized.POST("/patients/:id", Controllers.UpdatePatient)
		authorized.DELETE("/patients/:id", Controllers.DeletePatient)

		// Doctor administration
		authorized.POST("/doctors", Middleware.RequireAdmin(), Controllers.RegisterDoctor)
		authorized.DELETE("/doctors/:id", Middleware.RequireAdmin(), Controllers.DeleteDoctor)

		// Appointment-related routes
		authorized.GET("/appointments", Controllers.FetchAppointments)
		authorized.POST("/appointments", Controllers.CreateAppointment)
		authorized.GET("/appointments/:id", Controllers.AppointmentDetail)
		authorized.POST("/appointments/:id", Controllers.UpdateAppointment)
		authorized.POST("/appointments/:id/confirm", Controllers.ConfirmAppointment)
		authorized.POST("/appointments/:id/reject", Controllers.RejectAppointment)

		// Medical record routes
		authorized.POST("/patients/:id/records", Controllers.CreateRecord)
		authorized.GET("/records", Controllers.FetchRecords)
		authorized.DELETE("/records/:id", Controllers.DeleteRecord)
		authorized.GET("/records/:id/pdf", Controllers.ExportRecordPDF)

		// Export-related routes
		authorized.GET("/export/appointments", Controllers.ExportAppointmentsReport)
	}
}

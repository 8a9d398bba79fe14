package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"MediCarePro/Middleware"
	"MediCarePro/Models"
	"MediCarePro/Permissions"
	"MediCarePro/Reports"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportAppointmentsReport writes the appointment collection and its status
// summary to an .xlsx file and serves it. Admin only.
func ExportAppointmentsReport(c *gin.Context) {
	principal, _ := Middleware.GetPrincipal(c)
	if !principal.User.IsAdmin {
		c.String(http.StatusForbidden, Permissions.ForbiddenMessage)
		return
	}

	var appointments []Models.Appointment
	if err := Models.DB.Preload("Patient.User").Preload("Doctor.User").Order("date_time asc").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Patient",
		"C1": "Doctor",
		"D1": "Status",
	}
	file := excelize.NewFile()
	sheet := "Appointments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(appointments); i++ {
		appendRowAppointment(sheet, file, i, appointments)
	}

	summary := "Summary"
	file.NewSheet(summary)
	counts := Reports.CountByStatus(appointments)
	file.SetCellValue(summary, "A1", "Status")
	file.SetCellValue(summary, "B1", "Count")
	file.SetCellValue(summary, "A2", Models.StatusPending)
	file.SetCellValue(summary, "B2", counts.Pending)
	file.SetCellValue(summary, "A3", Models.StatusConfirmed)
	file.SetCellValue(summary, "B3", counts.Confirmed)
	file.SetCellValue(summary, "A4", Models.StatusCompleted)
	file.SetCellValue(summary, "B4", counts.Completed)
	file.SetCellValue(summary, "A5", Models.StatusRejected)
	file.SetCellValue(summary, "B5", counts.Rejected)

	var filename string = "./AppointmentsReport.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowAppointment(sheet string, file *excelize.File, index int, rows []Models.Appointment) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].DateTime.Format("2006-01-02 15:04"))
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Patient.User.FullName())
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Doctor.User.FullName())
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Status)
}

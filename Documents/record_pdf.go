package Documents

import (
	"bytes"
	"fmt"
	"strings"

	"MediCarePro/Models"

	"github.com/jung-kurt/gofpdf"
)

// RecordFilename builds the suggested download name,
// MedicalRecord_<PatientFullName with spaces replaced by underscores>.pdf.
func RecordFilename(record Models.MedicalRecord) string {
	return fmt.Sprintf("MedicalRecord_%s.pdf", strings.ReplaceAll(record.Patient.User.FullName(), " ", "_"))
}

// RenderRecordPDF renders a medical record as a one-page report: header,
// patient block, doctor block, the wrapped note, creation timestamp and a
// signature line.
func RenderRecordPDF(record Models.MedicalRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Medical Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "MediCare Pro - Medical Report", "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.2)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Patient Information:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Name: %s", record.Patient.User.FullName()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Email: %s", record.Patient.User.Email), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Phone: %s", record.Patient.Phone), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Doctor Information:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	doctorName := ""
	specialization := ""
	if record.Doctor != nil {
		doctorName = record.Doctor.User.FullName()
		specialization = record.Doctor.Specialization
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Doctor: %s", doctorName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Specialization: %s", specialization), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Medical Note:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	// MultiCell keeps embedded newlines as line breaks.
	pdf.MultiCell(0, 6, record.Description, "", "L", false)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Created on: %s", record.CreatedAt.Format("Jan 02, 2006 - 03:04 PM")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Doctor: %s", doctorName), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	y := pdf.GetY()
	pdf.Line(15, y, 85, y)
	pdf.CellFormat(0, 8, "Doctor Signature", "", 1, "L", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

package Documents

import (
	"testing"
	"time"

	"MediCarePro/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Models.MedicalRecord {
	doctorID := uint(1)
	doctor := Models.Doctor{
		User:           Models.User{FirstName: "Greg", LastName: "House"},
		Specialization: "Diagnostics",
	}
	record := Models.MedicalRecord{
		PatientID:   1,
		DoctorID:    &doctorID,
		Doctor:      &doctor,
		Description: "Line one\nLine two",
		Patient: Models.Patient{
			User:  Models.User{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"},
			Phone: "+201000000000",
		},
	}
	record.CreatedAt = time.Date(2026, time.March, 4, 14, 30, 0, 0, time.UTC)
	return record
}

func TestRecordFilename(t *testing.T) {
	assert.Equal(t, "MedicalRecord_Alice_Smith.pdf", RecordFilename(sampleRecord()))
}

func TestRenderRecordPDF(t *testing.T) {
	document, err := RenderRecordPDF(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestRenderRecordPDFWithoutDoctor(t *testing.T) {
	record := sampleRecord()
	record.DoctorID = nil
	record.Doctor = nil

	document, err := RenderRecordPDF(record)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(document[:4]))
}

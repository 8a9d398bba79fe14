package Permissions

import (
	"testing"

	"MediCarePro/Models"

	"github.com/stretchr/testify/assert"
)

func patientPrincipal(userID, patientID uint) Principal {
	p := Principal{User: Models.User{IsPatient: true}, PatientID: patientID}
	p.User.ID = userID
	return p
}

func doctorPrincipal(userID, doctorID uint) Principal {
	p := Principal{User: Models.User{IsDoctor: true}, DoctorID: doctorID}
	p.User.ID = userID
	return p
}

func adminPrincipal(userID uint) Principal {
	p := Principal{User: Models.User{IsAdmin: true}}
	p.User.ID = userID
	return p
}

func TestViewPatientProfile(t *testing.T) {
	owner := patientPrincipal(1, 10)
	other := patientPrincipal(2, 20)
	profile := Models.Patient{UserID: 1}
	profile.ID = 10

	assert.Equal(t, RedirectDashboard, ViewPatientProfile(owner, profile), "owner is redirected, never forbidden")
	assert.Equal(t, Forbid, ViewPatientProfile(other, profile))

	doctor := doctorPrincipal(3, 30)
	assert.Equal(t, Allow, ViewPatientProfile(doctor, profile))
	assert.Equal(t, Allow, ViewPatientProfile(adminPrincipal(4), profile))
}

func TestListPatients(t *testing.T) {
	assert.Equal(t, RedirectDashboard, ListPatients(patientPrincipal(1, 10)))
	assert.Equal(t, Allow, ListPatients(doctorPrincipal(2, 20)))
	assert.Equal(t, Allow, ListPatients(adminPrincipal(3)))
	assert.Equal(t, Forbid, ListPatients(Principal{User: Models.User{}}))
}

func TestCanEditPatientProfile(t *testing.T) {
	profile := Models.Patient{UserID: 1}

	assert.True(t, CanEditPatientProfile(patientPrincipal(1, 10), profile))
	assert.False(t, CanEditPatientProfile(patientPrincipal(2, 20), profile))
	assert.True(t, CanEditPatientProfile(doctorPrincipal(3, 30), profile))
	assert.True(t, CanEditPatientProfile(adminPrincipal(4), profile))
}

func TestCanManagePatients(t *testing.T) {
	assert.True(t, CanManagePatients(doctorPrincipal(1, 10)))
	assert.True(t, CanManagePatients(adminPrincipal(2)))
	assert.False(t, CanManagePatients(patientPrincipal(3, 30)))
}

func TestCanTransitionAppointment(t *testing.T) {
	appointment := Models.Appointment{DoctorID: 10, PatientID: 50}

	assigned := doctorPrincipal(1, 10)
	unassigned := doctorPrincipal(2, 11)

	assert.True(t, CanTransitionAppointment(assigned, appointment))
	assert.False(t, CanTransitionAppointment(unassigned, appointment))
	assert.False(t, CanTransitionAppointment(patientPrincipal(3, 50), appointment), "even the owning patient cannot transition")
	assert.False(t, CanTransitionAppointment(adminPrincipal(4), appointment))
}

func TestCanEditAppointment(t *testing.T) {
	appointment := Models.Appointment{DoctorID: 10, PatientID: 50}

	assert.True(t, CanEditAppointment(patientPrincipal(1, 50), appointment))
	assert.False(t, CanEditAppointment(patientPrincipal(2, 51), appointment))
	assert.True(t, CanEditAppointment(doctorPrincipal(3, 10), appointment))
	assert.False(t, CanEditAppointment(doctorPrincipal(4, 11), appointment))
	assert.False(t, CanEditAppointment(adminPrincipal(5), appointment))
}

func TestCanViewAppointment(t *testing.T) {
	appointment := Models.Appointment{DoctorID: 10, PatientID: 50}

	assert.True(t, CanViewAppointment(patientPrincipal(1, 50), appointment))
	assert.False(t, CanViewAppointment(patientPrincipal(2, 51), appointment))
	assert.True(t, CanViewAppointment(doctorPrincipal(3, 11), appointment))
	assert.True(t, CanViewAppointment(adminPrincipal(4), appointment))
}

func TestRecordPolicy(t *testing.T) {
	author := uint(10)
	record := Models.MedicalRecord{PatientID: 50, DoctorID: &author}

	t.Run("delete", func(t *testing.T) {
		assert.True(t, CanDeleteRecord(doctorPrincipal(1, 10), record))
		assert.False(t, CanDeleteRecord(doctorPrincipal(2, 11), record))
		assert.True(t, CanDeleteRecord(adminPrincipal(3), record))
		assert.False(t, CanDeleteRecord(patientPrincipal(4, 50), record))
	})

	t.Run("export", func(t *testing.T) {
		assert.True(t, CanExportRecord(patientPrincipal(1, 50), record))
		assert.False(t, CanExportRecord(patientPrincipal(2, 51), record))
		assert.True(t, CanExportRecord(doctorPrincipal(3, 10), record))
		assert.False(t, CanExportRecord(doctorPrincipal(4, 11), record))
		assert.True(t, CanExportRecord(adminPrincipal(5), record))
	})

	t.Run("orphaned record", func(t *testing.T) {
		orphan := Models.MedicalRecord{PatientID: 50}
		assert.False(t, CanDeleteRecord(doctorPrincipal(1, 10), orphan))
		assert.True(t, CanDeleteRecord(adminPrincipal(2), orphan))
	})

	t.Run("create and list", func(t *testing.T) {
		assert.True(t, CanCreateRecord(doctorPrincipal(1, 10)))
		assert.False(t, CanCreateRecord(patientPrincipal(2, 50)))
		assert.False(t, CanCreateRecord(adminPrincipal(3)))
		assert.True(t, CanListRecords(adminPrincipal(3)))
		assert.False(t, CanListRecords(doctorPrincipal(1, 10)))
	})
}

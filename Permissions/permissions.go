package Permissions

import (
	"MediCarePro/Models"
)

// ForbiddenMessage is the fixed body of every Forbidden outcome.
const ForbiddenMessage = "Not allowed."

// Principal is the acting account together with the profile rows it owns.
// DoctorID/PatientID are zero when the account has no such profile.
type Principal struct {
	User      Models.User
	DoctorID  uint
	PatientID uint
}

// Decision is the outcome of a profile-view check. Patients asking for their
// own profile by id are redirected to the dashboard instead of being shown
// the profile or a Forbidden page.
type Decision int

const (
	Forbid Decision = iota
	Allow
	RedirectDashboard
)

// CanManagePatients covers listing, creating, editing and deleting patient
// profiles.
func CanManagePatients(p Principal) bool {
	return p.User.IsDoctor || p.User.IsAdmin
}

// ListPatients: a pure patient is bounced to their own profile rather than
// shown the roster.
func ListPatients(p Principal) Decision {
	if p.User.IsPatient && !p.User.IsAdmin {
		return RedirectDashboard
	}
	if p.User.IsDoctor || p.User.IsAdmin {
		return Allow
	}
	return Forbid
}

func ViewPatientProfile(p Principal, patient Models.Patient) Decision {
	if p.User.IsPatient {
		if patient.UserID != p.User.ID {
			return Forbid
		}
		return RedirectDashboard
	}
	if p.User.IsDoctor || p.User.IsAdmin {
		return Allow
	}
	return Forbid
}

// CanEditPatientProfile: doctors and admins edit anyone; a patient edits
// only their own profile.
func CanEditPatientProfile(p Principal, patient Models.Patient) bool {
	if CanManagePatients(p) {
		return true
	}
	return p.User.IsPatient && patient.UserID == p.User.ID
}

func CanViewAppointment(p Principal, appointment Models.Appointment) bool {
	if p.User.IsPatient {
		return appointment.PatientID == p.PatientID && p.PatientID != 0
	}
	return true
}

func CanEditAppointment(p Principal, appointment Models.Appointment) bool {
	if p.User.IsPatient && p.PatientID != 0 && appointment.PatientID == p.PatientID {
		return true
	}
	if p.User.IsDoctor && p.DoctorID != 0 && appointment.DoctorID == p.DoctorID {
		return true
	}
	return false
}

// CanTransitionAppointment: only the assigned doctor confirms or rejects.
func CanTransitionAppointment(p Principal, appointment Models.Appointment) bool {
	return p.User.IsDoctor && p.DoctorID != 0 && appointment.DoctorID == p.DoctorID
}

func CanCreateRecord(p Principal) bool {
	return p.User.IsDoctor && p.DoctorID != 0
}

func CanListRecords(p Principal) bool {
	return p.User.IsAdmin
}

// CanDeleteRecord: the authoring doctor or an admin. A doctor never deletes
// another doctor's note.
func CanDeleteRecord(p Principal, record Models.MedicalRecord) bool {
	if p.User.IsAdmin {
		return true
	}
	if p.User.IsDoctor && record.DoctorID != nil && *record.DoctorID == p.DoctorID && p.DoctorID != 0 {
		return true
	}
	return false
}

// CanExportRecord: the owning patient, the authoring doctor, or an admin.
func CanExportRecord(p Principal, record Models.MedicalRecord) bool {
	if p.User.IsAdmin {
		return true
	}
	if p.User.IsPatient && p.PatientID != 0 && record.PatientID == p.PatientID {
		return true
	}
	if p.User.IsDoctor && record.DoctorID != nil && *record.DoctorID == p.DoctorID && p.DoctorID != 0 {
		return true
	}
	return false
}

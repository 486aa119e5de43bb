package models

// MeetingType defines the two recurring meeting kinds per week
type MeetingType string

const (
	MeetingTypeMidweek MeetingType = "midweek"
	MeetingTypeWeekend MeetingType = "weekend"
)

// Gender defines publisher gender values
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Privilege defines the optional privilege tier of a publisher
type Privilege string

const (
	PrivilegeElder              Privilege = "elder"
	PrivilegeMinisterialServant Privilege = "ministerial_servant"
)

// IsValid checks if the MeetingType is valid
func (m MeetingType) IsValid() bool {
	switch m {
	case MeetingTypeMidweek, MeetingTypeWeekend:
		return true
	}
	return false
}

// IsValid checks if the Gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// IsValid checks if the Privilege is valid
func (p Privilege) IsValid() bool {
	switch p {
	case PrivilegeElder, PrivilegeMinisterialServant:
		return true
	}
	return false
}

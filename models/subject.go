package models

// Weekday abbreviations accepted in a ScheduleSlot.
const (
	Monday    = "Mon"
	Tuesday   = "Tue"
	Wednesday = "Wed"
	Thursday  = "Thu"
	Friday    = "Fri"
	Saturday  = "Sat"
	Sunday    = "Sun"
)

// SubjectRequest is the body of POST /api/attendance/subject.
type SubjectRequest struct {
	Name string `json:"name" validate:"required"`
	// Color is a CSS hex color such as "#34D399".
	Color    string         `json:"color" validate:"required,hexcolor"`
	Schedule []ScheduleSlot `json:"schedule" validate:"required,min=1,dive"`
}

// ScheduleSlot is one weekly class slot. Times are "HH:MM" in local time.
type ScheduleSlot struct {
	Day       string `json:"day" validate:"oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

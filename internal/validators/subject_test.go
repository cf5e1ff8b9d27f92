package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/college-organizer/models"
)

func validSubject() models.SubjectRequest {
	return models.SubjectRequest{
		Name:  "Linear Algebra",
		Color: "#34D399",
		Schedule: []models.ScheduleSlot{
			{Day: models.Monday, StartTime: "09:00", EndTime: "10:00"},
			{Day: models.Thursday, StartTime: "13:30", EndTime: "15:00"},
		},
	}
}

func TestSubjectValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SubjectRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SubjectRequest) {}},
		{name: "short hex color", mutate: func(s *models.SubjectRequest) { s.Color = "#fff" }},
		{name: "missing name", mutate: func(s *models.SubjectRequest) { s.Name = "" }, wantErr: ErrInvalidField},
		{name: "missing color", mutate: func(s *models.SubjectRequest) { s.Color = "" }, wantErr: ErrInvalidField},
		{name: "named color", mutate: func(s *models.SubjectRequest) { s.Color = "green" }, wantErr: ErrInvalidField},
		{name: "no schedule", mutate: func(s *models.SubjectRequest) { s.Schedule = nil }, wantErr: ErrInvalidField},
		{name: "empty schedule", mutate: func(s *models.SubjectRequest) { s.Schedule = []models.ScheduleSlot{} }, wantErr: ErrInvalidField},
		{name: "full day name", mutate: func(s *models.SubjectRequest) { s.Schedule[1].Day = "Thursday" }, wantErr: ErrInvalidField},
		{name: "start not a time", mutate: func(s *models.SubjectRequest) { s.Schedule[0].StartTime = "9am" }, wantErr: ErrInvalidField},
		{name: "end out of range", mutate: func(s *models.SubjectRequest) { s.Schedule[0].EndTime = "24:30" }, wantErr: ErrInvalidField},
		{name: "ends before start", mutate: func(s *models.SubjectRequest) { s.Schedule[1].EndTime = "13:00" }, wantErr: ErrEndBeforeStart},
		{name: "zero length slot", mutate: func(s *models.SubjectRequest) { s.Schedule[0].EndTime = "09:00" }, wantErr: ErrEndBeforeStart},
	}

	v := NewSubjectValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := validSubject()
			tt.mutate(&subject)

			err := v.Validate(context.Background(), subject)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubjectValidator_Pointer(t *testing.T) {
	subject := validSubject()
	subject.Name = ""

	err := NewSubjectValidator().Validate(context.Background(), &subject)

	require.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "SubjectRequest.Name")
}

func TestSubjectValidator_Fields(t *testing.T) {
	subject := validSubject()
	subject.Color = "green"
	subject.Schedule[0].EndTime = "08:00"

	v := NewSubjectValidator()

	assert.NoError(t, v.Validate(context.Background(), subject, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), subject, FieldColor), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(context.Background(), subject, FieldName, FieldSchedule), ErrEndBeforeStart)
	assert.ErrorIs(t, v.Validate(context.Background(), subject, "Room"), ErrUnknownField)
}

func TestSubjectValidator_Slot(t *testing.T) {
	v := NewSubjectValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ScheduleSlot{Day: models.Friday, StartTime: "08:00", EndTime: "09:30"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.ScheduleSlot{Day: "Fri", StartTime: "10:00", EndTime: "09:30"}), ErrEndBeforeStart)
	assert.ErrorIs(t, v.Validate(context.Background(), models.ScheduleSlot{Day: "Funday", StartTime: "08:00", EndTime: "09:00"}), ErrInvalidField)
}

func TestSubjectValidator_UnsupportedType(t *testing.T) {
	err := NewSubjectValidator().Validate(context.Background(), "subject")

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/college-organizer/models"
)

// Field name constants used to restrict validation of a
// [models.SubjectRequest] to a subset of its fields.
const (
	FieldName     = "Name"
	FieldColor    = "Color"
	FieldSchedule = "Schedule"
)

var subjectFields = []string{FieldName, FieldColor, FieldSchedule}

type SubjectValidator struct {
	validate *validator.Validate
}

func NewSubjectValidator() Validator {
	return &SubjectValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks a subject or a single schedule slot. Field names are only
// meaningful for subjects.
func (v *SubjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubjectRequest:
		return v.validateSubject(ctx, value, fields...)
	case *models.SubjectRequest:
		return v.validateSubject(ctx, *value, fields...)

	case models.ScheduleSlot:
		return v.validateSlot(ctx, value)
	case *models.ScheduleSlot:
		return v.validateSlot(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SubjectValidator) validateSubject(ctx context.Context, subject models.SubjectRequest, fields ...string) error {
	for _, field := range fields {
		if !slices.Contains(subjectFields, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, subject)
	} else {
		err = v.validate.StructPartialCtx(ctx, subject, fields...)
	}
	if err != nil {
		return fieldErrors(err)
	}

	if len(fields) != 0 && !slices.Contains(fields, FieldSchedule) {
		return nil
	}

	for i, slot := range subject.Schedule {
		if err = checkSlotOrder(slot); err != nil {
			return fmt.Errorf("schedule[%d]: %w", i, err)
		}
	}

	return nil
}

func (v *SubjectValidator) validateSlot(ctx context.Context, slot models.ScheduleSlot) error {
	if err := v.validate.StructCtx(ctx, slot); err != nil {
		return fieldErrors(err)
	}
	return checkSlotOrder(slot)
}

// checkSlotOrder relies on the "HH:MM" layout, which sorts lexically.
func checkSlotOrder(slot models.ScheduleSlot) error {
	if slot.EndTime <= slot.StartTime {
		return fmt.Errorf("%w: %s-%s", ErrEndBeforeStart, slot.StartTime, slot.EndTime)
	}
	return nil
}

// fieldErrors reports the first failing field under [ErrInvalidField].
func fieldErrors(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	return fmt.Errorf("%w: %s failed on %q", ErrInvalidField, first.Namespace(), first.Tag())
}

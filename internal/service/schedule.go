package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
	"gorm.io/gorm"
)

type ScheduleInput struct {
	Subject string
	Day     string
	Time    string
	Room    string
	Type    string
}

// SchedulePatch mirrors TransactionPatch: nil means "leave alone". The
// completion flag toggles through here independently of the other fields.
type SchedulePatch struct {
	Subject     *string
	Day         *string
	Time        *string
	Room        *string
	Type        *string
	IsCompleted *bool
}

type ScheduleService struct {
	repo repository.ScheduleRepo
}

func NewScheduleService(repo repository.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) Create(ctx context.Context, userID string, input ScheduleInput) (*model.Schedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		Subject: input.Subject,
		Day:     input.Day,
		Time:    input.Time,
		Room:    input.Room,
		Type:    input.Type,
		UserID:  userID,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// List returns the owner's schedule, optionally narrowed to one weekday.
func (s *ScheduleService) List(ctx context.Context, userID, day string) ([]model.Schedule, error) {
	if day != "" && !model.ValidWeekday(day) {
		return nil, fmt.Errorf("unknown weekday %q", day)
	}
	return s.repo.ListByOwner(ctx, userID, day)
}

func (s *ScheduleService) Update(ctx context.Context, userID string, id uint, patch SchedulePatch) (*model.Schedule, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotFound
	}

	if err := applySchedulePatch(existing, patch); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ScheduleService) Delete(ctx context.Context, userID string, id uint) error {
	affected, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateScheduleInput(input ScheduleInput) error {
	if input.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if !model.ValidWeekday(input.Day) {
		return fmt.Errorf("unknown weekday %q", input.Day)
	}
	if !model.ValidTimeOfDay(input.Time) {
		return fmt.Errorf("time must be HH:MM")
	}
	if !model.ValidScheduleType(input.Type) {
		return fmt.Errorf("unknown schedule type %q", input.Type)
	}
	return nil
}

func applySchedulePatch(schedule *model.Schedule, patch SchedulePatch) error {
	if patch.Subject != nil {
		if *patch.Subject == "" {
			return fmt.Errorf("subject cannot be empty")
		}
		schedule.Subject = *patch.Subject
	}
	if patch.Day != nil {
		if !model.ValidWeekday(*patch.Day) {
			return fmt.Errorf("unknown weekday %q", *patch.Day)
		}
		schedule.Day = *patch.Day
	}
	if patch.Time != nil {
		if !model.ValidTimeOfDay(*patch.Time) {
			return fmt.Errorf("time must be HH:MM")
		}
		schedule.Time = *patch.Time
	}
	if patch.Room != nil {
		schedule.Room = *patch.Room
	}
	if patch.Type != nil {
		if !model.ValidScheduleType(*patch.Type) {
			return fmt.Errorf("unknown schedule type %q", *patch.Type)
		}
		schedule.Type = *patch.Type
	}
	if patch.IsCompleted != nil {
		schedule.IsCompleted = *patch.IsCompleted
	}
	return nil
}

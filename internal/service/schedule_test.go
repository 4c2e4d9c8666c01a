package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/gorm"
)

type fakeScheduleRepo struct {
	schedules map[uint]*model.Schedule
	nextID    uint
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[uint]*model.Schedule{}, nextID: 1}
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	s.ID = f.nextID
	f.nextID++
	copied := *s
	f.schedules[s.ID] = &copied
	return nil
}

func (f *fakeScheduleRepo) ListByOwner(_ context.Context, userID, day string) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, s := range f.schedules {
		if s.UserID == userID && (day == "" || s.Day == day) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id uint) (*model.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, s *model.Schedule) error {
	copied := *s
	f.schedules[s.ID] = &copied
	return nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, userID string, id uint) (int64, error) {
	s, ok := f.schedules[id]
	if !ok || s.UserID != userID {
		return 0, nil
	}
	delete(f.schedules, id)
	return 1, nil
}

func TestScheduleCreateValidation(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	ctx := context.Background()

	valid := ScheduleInput{
		Subject: "Calculus", Day: "Monday", Time: "08:30", Room: "A-101", Type: "Lecture",
	}
	if _, err := svc.Create(ctx, "owner-1", valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*ScheduleInput)
	}{
		{"empty subject", func(in *ScheduleInput) { in.Subject = "" }},
		{"bad weekday", func(in *ScheduleInput) { in.Day = "Someday" }},
		{"bad time", func(in *ScheduleInput) { in.Time = "8:30" }},
		{"out of range time", func(in *ScheduleInput) { in.Time = "24:00" }},
		{"bad type", func(in *ScheduleInput) { in.Type = "Seminar" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			if _, err := svc.Create(ctx, "owner-1", in); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestScheduleCompletionToggle(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", ScheduleInput{
		Subject: "Databases", Day: "Wednesday", Time: "10:00", Type: "Lab",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := true
	updated, err := svc.Update(ctx, "owner-1", created.ID, SchedulePatch{IsCompleted: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsCompleted {
		t.Error("IsCompleted = false, want true")
	}
	if updated.Subject != "Databases" || updated.Time != "10:00" {
		t.Errorf("toggle touched other fields: %+v", updated)
	}

	// Toggling back off must persist too.
	notDone := false
	updated, err = svc.Update(ctx, "owner-1", created.ID, SchedulePatch{IsCompleted: &notDone})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.IsCompleted {
		t.Error("IsCompleted = true, want false after toggling back")
	}
}

func TestScheduleListByDay(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	for _, in := range []ScheduleInput{
		{Subject: "B", Day: "Monday", Time: "13:00", Type: "Lecture"},
		{Subject: "A", Day: "Monday", Time: "08:00", Type: "Lecture"},
		{Subject: "C", Day: "Friday", Time: "09:00", Type: "Exam"},
	} {
		if _, err := svc.Create(ctx, "owner-1", in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	monday, err := svc.List(ctx, "owner-1", "Monday")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(monday) != 2 {
		t.Fatalf("got %d entries for Monday, want 2", len(monday))
	}
	if monday[0].Subject != "A" || monday[1].Subject != "B" {
		t.Errorf("entries not sorted by time: %s, %s", monday[0].Subject, monday[1].Subject)
	}

	if _, err := svc.List(ctx, "owner-1", "Caturday"); err == nil {
		t.Error("unknown weekday filter should be rejected")
	}
}

func TestScheduleOwnership(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", ScheduleInput{
		Subject: "Statistics", Day: "Friday", Time: "13:00", Type: "Exam",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := true
	if _, err := svc.Update(ctx, "owner-2", created.ID, SchedulePatch{IsCompleted: &done}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update by non-owner: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "owner-2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete by non-owner: err = %v, want ErrNotFound", err)
	}
}

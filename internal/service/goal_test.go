package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/gorm"
)

// fakeGoalRepo keeps goals in a map and mimics the owner-scoped semantics of
// the real repository.
type fakeGoalRepo struct {
	goals  map[uint]*model.Goal
	nextID uint
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[uint]*model.Goal{}, nextID: 1}
}

func (f *fakeGoalRepo) Create(_ context.Context, goal *model.Goal) error {
	goal.ID = f.nextID
	f.nextID++
	copied := *goal
	f.goals[goal.ID] = &copied
	return nil
}

func (f *fakeGoalRepo) ListByOwner(_ context.Context, userID string) ([]model.Goal, error) {
	var out []model.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) GetByID(_ context.Context, id uint) (*model.Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGoalRepo) AddSaving(_ context.Context, userID string, id uint, amount float64) (int64, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return 0, nil
	}
	g.SavedAmount += amount
	return 1, nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, userID string, id uint) (int64, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return 0, nil
	}
	delete(f.goals, id)
	return 1, nil
}

func TestGoalPercentage(t *testing.T) {
	tests := []struct {
		name   string
		saved  float64
		target float64
		want   int
	}{
		{"halfway", 1_000_000, 2_000_000, 50},
		{"complete", 2_000_000, 2_000_000, 100},
		{"overshoot clamps to 100", 5_000, 1_000, 100},
		{"empty", 0, 2_000_000, 0},
		{"rounds to nearest", 333, 1_000, 33},
		{"zero target guards division", 500, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalPercentage(tt.saved, tt.target); got != tt.want {
				t.Errorf("GoalPercentage(%v, %v) = %d, want %d", tt.saved, tt.target, got, tt.want)
			}
		})
	}
}

func TestGoalAddSaving(t *testing.T) {
	repo := newFakeGoalRepo()
	svc := NewGoalService(repo)
	ctx := context.Background()

	goal, err := svc.Create(ctx, "owner-1", "New phone", 2_000_000)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Two contributions accumulate; overshoot would not be clamped in storage.
	for i := 0; i < 2; i++ {
		if _, err := svc.AddSaving(ctx, "owner-1", goal.ID, 500_000); err != nil {
			t.Fatalf("AddSaving #%d: %v", i+1, err)
		}
	}

	if _, err := svc.AddSaving(ctx, "owner-1", goal.ID, 0); err == nil {
		t.Fatal("AddSaving with zero amount should fail")
	}

	got, err := repo.GetByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.SavedAmount != 1_000_000 {
		t.Errorf("savedAmount = %v, want 1000000", got.SavedAmount)
	}
	if pct := GoalPercentage(got.SavedAmount, got.TargetAmount); pct != 50 {
		t.Errorf("percentage = %d, want 50", pct)
	}
}

func TestGoalAddSavingOwnership(t *testing.T) {
	repo := newFakeGoalRepo()
	svc := NewGoalService(repo)
	ctx := context.Background()

	goal, err := svc.Create(ctx, "owner-1", "Vacation", 1_000_000)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A different owner must get not-found, not a hint the goal exists.
	_, err = svc.AddSaving(ctx, "owner-2", goal.ID, 100_000)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddSaving by non-owner: err = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, "owner-2", goal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete by non-owner: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "owner-1", goal.ID); err != nil {
		t.Errorf("Delete by owner: %v", err)
	}
}

func TestGoalCreateValidation(t *testing.T) {
	svc := NewGoalService(newFakeGoalRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", "", 1000); err == nil {
		t.Error("empty title should be rejected")
	}
	if _, err := svc.Create(ctx, "owner-1", "Bike", 0); err == nil {
		t.Error("zero target should be rejected")
	}
	if _, err := svc.Create(ctx, "owner-1", "Bike", -5); err == nil {
		t.Error("negative target should be rejected")
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
	"gorm.io/gorm"
)

type GoalService struct {
	repo repository.GoalRepo
}

func NewGoalService(repo repository.GoalRepo) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Create(ctx context.Context, userID, title string, targetAmount float64) (*model.Goal, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if targetAmount <= 0 {
		return nil, fmt.Errorf("target amount must be greater than zero")
	}

	goal := &model.Goal{
		Title:        title,
		TargetAmount: targetAmount,
		SavedAmount:  0, // always starts empty, whatever the client sent
		UserID:       userID,
	}
	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]model.GoalStatus, error) {
	goals, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]model.GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, model.GoalStatus{
			Goal:       g,
			Percentage: GoalPercentage(g.SavedAmount, g.TargetAmount),
		})
	}
	return statuses, nil
}

// AddSaving contributes amount to an owned goal via the repo's atomic
// increment and returns the refreshed goal with its percentage.
func (s *GoalService) AddSaving(ctx context.Context, userID string, id uint, amount float64) (*model.GoalStatus, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	affected, err := s.repo.AddSaving(ctx, userID, id, amount)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.GoalStatus{
		Goal:       *goal,
		Percentage: GoalPercentage(goal.SavedAmount, goal.TargetAmount),
	}, nil
}

func (s *GoalService) Delete(ctx context.Context, userID string, id uint) error {
	affected, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GoalPercentage derives the display percentage, capped at 100. The stored
// saved amount is never clamped; overshoot only disappears here.
func GoalPercentage(saved, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(saved / target * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

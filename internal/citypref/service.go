package citypref

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=citypref

type Repository interface {
	Upsert(ctx context.Context, p *Preference) error
	List(ctx context.Context, userID uuid.UUID) ([]*Preference, error)
	Delete(ctx context.Context, userID uuid.UUID, cityName string) (bool, error)
	ListCities(ctx context.Context, userID uuid.UUID, action Action) ([]string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Set likes or dislikes a city, replacing any earlier choice for the same city.
func (s *Service) Set(ctx context.Context, userID uuid.UUID, cityName string, action Action) (*Preference, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return nil, ErrEmptyCity
	}

	if !action.Valid() {
		return nil, ErrInvalidAction
	}

	p := &Preference{
		UserID:   userID,
		CityName: cityName,
		Action:   action,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("saving city preference: %w", err)
	}

	return p, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	prefs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing city preferences: %w", err)
	}

	sum := &Summary{
		UserID:      userID,
		Preferences: prefs,
		Likes:       []string{},
		Dislikes:    []string{},
	}

	if sum.Preferences == nil {
		sum.Preferences = []*Preference{}
	}

	for _, p := range prefs {
		switch p.Action {
		case ActionLike:
			sum.Likes = append(sum.Likes, p.CityName)
		case ActionDislike:
			sum.Dislikes = append(sum.Dislikes, p.CityName)
		}
	}

	return sum, nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID, cityName string) error {
	deleted, err := s.repo.Delete(ctx, userID, strings.TrimSpace(cityName))
	if err != nil {
		return fmt.Errorf("deleting city preference: %w", err)
	}

	if !deleted {
		return ErrNotFound
	}

	return nil
}

// Disliked returns the names of the cities userID disliked.
func (s *Service) Disliked(ctx context.Context, userID uuid.UUID) ([]string, error) {
	cities, err := s.repo.ListCities(ctx, userID, ActionDislike)
	if err != nil {
		return nil, fmt.Errorf("listing disliked cities: %w", err)
	}

	return cities, nil
}

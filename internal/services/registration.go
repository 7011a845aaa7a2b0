package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventregistry/internal/domain"
)

type registrationService struct {
	userRepo         domain.UserRepository
	eventRepo        domain.EventRepository
	registrationRepo domain.EventRegistrationRepository
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService with the given repositories.
func NewRegistrationService(
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	registrationRepo domain.EventRegistrationRepository,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

// Register checks existence of the user, then the event, then uniqueness of
// the pair, in that order. A request naming a missing user and a missing
// event reports the missing user.
func (s *registrationService) Register(ctx context.Context, userID, eventID int64) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if _, err := s.registrationRepo.GetByUserAndEvent(ctx, userID, eventID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get event registration: %w", err)
	}

	reg := domain.NewEventRegistration(userID, eventID, time.Now().UTC())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		// The unique constraint catches the race between the check and the insert.
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create event registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) UsersForEvent(ctx context.Context, eventID int64) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	users, err := s.registrationRepo.ListUsersByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list users for event: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *registrationService) EventsForUser(ctx context.Context, userID int64) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	events, err := s.registrationRepo.ListEventsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list events for user: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

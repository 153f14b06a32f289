package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
)

var (
	// ErrNotAdmin indicates the acting user lacks the admin role.
	ErrNotAdmin = errors.New("admin role required")

	// ErrBadCredentials indicates an unknown or empty API token.
	ErrBadCredentials = errors.New("invalid credentials")
)

type adminService struct {
	users    repository.UserRepo
	observer UseCaseObserver
}

func NewAdminService(users repository.UserRepo, observers ...UseCaseObserver) AdminService {
	return &adminService{users: users, observer: useCaseObserverOrNoop(observers)}
}

func (s *adminService) Authenticate(ctx context.Context, apiToken string) (*domain.User, error) {
	if apiToken == "" {
		return nil, ErrBadCredentials
	}
	u, err := s.users.GetByAPIToken(ctx, apiToken)
	if err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// Act applies approve/reject/delete on the target user. Authorization
// is the actor's role column, nothing else.
func (s *adminService) Act(ctx context.Context, actor *domain.User, action AdminAction, userID string) error {
	start := time.Now()
	err := s.act(ctx, actor, action, userID)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "admin_action",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"action":  string(action),
			"user_id": userID,
		},
	})
	return err
}

func (s *adminService) act(ctx context.Context, actor *domain.User, action AdminAction, userID string) error {
	if actor == nil || !actor.IsAdmin() {
		return ErrNotAdmin
	}
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	switch action {
	case AdminApprove:
		return s.setStatus(ctx, userID, domain.UserApproved)
	case AdminReject:
		return s.setStatus(ctx, userID, domain.UserRejected)
	case AdminDelete:
		if _, err := s.users.GetByID(ctx, userID); err != nil {
			return err
		}
		return s.users.Delete(ctx, userID)
	default:
		return fmt.Errorf("unknown admin action %q", action)
	}
}

func (s *adminService) setStatus(ctx context.Context, userID string, status domain.UserStatus) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	u.Status = status
	u.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, u)
}

func (s *adminService) CreateUser(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = domain.RoleMember
	}
	if u.Status == "" {
		u.Status = domain.UserPending
	}
	if u.APIToken == "" {
		u.APIToken = uuid.New().String()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if err := u.Validate(); err != nil {
		return err
	}
	return s.users.Create(ctx, u)
}

func (s *adminService) ListUsers(ctx context.Context, organizationID string) ([]*domain.User, error) {
	return s.users.List(ctx, organizationID)
}

package identity

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/radreport/radreport/internal/platform/auth"
)

// Service implements credential verification and session tracking over
// the user repository.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Verify checks the credentials against the user collection. Both an
// unknown username and a wrong password return a nil account; callers
// must not distinguish the two.
func (s *Service) Verify(ctx context.Context, username, password string) (*auth.Account, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return &auth.Account{Username: u.Username, Name: u.Name, Role: u.Role}, nil
		}
	}
	return nil, nil
}

// Current returns the active session account, or nil when nobody is
// signed in.
func (s *Service) Current(ctx context.Context) (*auth.Account, error) {
	user, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &auth.Account{Username: user.Username, Name: user.Name, Role: user.Role}, nil
}

// SetCurrent records the active session account; nil clears it. The
// stored record never carries a password.
func (s *Service) SetCurrent(ctx context.Context, acct *auth.Account) error {
	if acct == nil {
		return s.repo.SetCurrentUser(ctx, nil)
	}
	return s.repo.SetCurrentUser(ctx, &User{
		Username: acct.Username,
		Name:     acct.Name,
		Role:     acct.Role,
	})
}

// Users returns all users with passwords stripped.
func (s *Service) Users(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

package identity

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/radreport/radreport/internal/platform/auth"
)

type mockRepo struct {
	users   []User
	current *User
}

func (m *mockRepo) List(context.Context) ([]User, error) { return m.users, nil }

func (m *mockRepo) FindByUsername(_ context.Context, username string) (*User, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			return &m.users[i], nil
		}
	}
	return nil, nil
}

func (m *mockRepo) SaveAll(_ context.Context, users []User) error {
	m.users = users
	return nil
}

func (m *mockRepo) CurrentUser(context.Context) (*User, error) { return m.current, nil }

func (m *mockRepo) SetCurrentUser(_ context.Context, user *User) error {
	m.current = user
	return nil
}

func seededRepo() *mockRepo {
	return &mockRepo{users: []User{
		{Username: "admin", Password: "admin", Role: "admin", Name: "System Administrator"},
		{Username: "dr.smith", Password: "password123", Role: "doctor", Name: "Dr. John Smith"},
		{Username: "dr.jones", Password: "password123", Role: "doctor", Name: "Dr. Sarah Jones"},
	}}
}

func TestVerify_Admin(t *testing.T) {
	svc := NewService(seededRepo(), zerolog.Nop())

	acct, err := svc.Verify(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if acct == nil {
		t.Fatal("expected the seeded admin account")
	}
	if acct.Name != "System Administrator" || acct.Role != "admin" {
		t.Errorf("unexpected account: %+v", acct)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	svc := NewService(seededRepo(), zerolog.Nop())

	acct, err := svc.Verify(context.Background(), "admin", "nope")
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if acct != nil {
		t.Errorf("expected nil for a wrong password, got %+v", acct)
	}
}

func TestVerify_UnknownUser(t *testing.T) {
	svc := NewService(seededRepo(), zerolog.Nop())

	acct, err := svc.Verify(context.Background(), "dr.who", "password123")
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if acct != nil {
		t.Errorf("expected nil for an unknown user, got %+v", acct)
	}
}

func TestSetCurrent_StripsPassword(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo, zerolog.Nop())

	err := svc.SetCurrent(context.Background(), &auth.Account{
		Username: "dr.smith", Name: "Dr. John Smith", Role: "doctor",
	})
	if err != nil {
		t.Fatalf("set current error: %v", err)
	}
	if repo.current == nil {
		t.Fatal("expected a session record")
	}
	if repo.current.Password != "" {
		t.Error("session record must not carry a password")
	}
}

func TestCurrent_RoundTrip(t *testing.T) {
	svc := NewService(seededRepo(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.SetCurrent(ctx, &auth.Account{Username: "dr.jones", Name: "Dr. Sarah Jones", Role: "doctor"}); err != nil {
		t.Fatalf("set current error: %v", err)
	}
	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current error: %v", err)
	}
	if acct == nil || acct.Username != "dr.jones" {
		t.Errorf("unexpected session account: %+v", acct)
	}

	if err := svc.SetCurrent(ctx, nil); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	acct, err = svc.Current(ctx)
	if err != nil {
		t.Fatalf("current error: %v", err)
	}
	if acct != nil {
		t.Errorf("expected no session after clearing, got %+v", acct)
	}
}

func TestUsers_Sanitized(t *testing.T) {
	svc := NewService(seededRepo(), zerolog.Nop())

	users, err := svc.Users(context.Background())
	if err != nil {
		t.Fatalf("users error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for _, u := range users {
		if u.Password != "" {
			t.Errorf("user %s still carries a password", u.Username)
		}
	}
}

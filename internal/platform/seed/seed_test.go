package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/radreport/radreport/internal/domain/identity"
	"github.com/radreport/radreport/internal/domain/report"
	"github.com/radreport/radreport/internal/platform/storage"
)

func newFixture(t *testing.T) (identity.Repository, report.Repository) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return identity.NewBoltRepository(store), report.NewBoltRepository(store)
}

func TestRun_SeedsEmptyStore(t *testing.T) {
	users, reports := newFixture(t)
	ctx := context.Background()

	if err := Run(ctx, users, reports, zerolog.Nop()); err != nil {
		t.Fatalf("run error: %v", err)
	}

	seeded, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(seeded) != 3 {
		t.Fatalf("expected 3 users, got %d", len(seeded))
	}
	admin, err := users.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if admin == nil || admin.Password != "admin" || admin.Name != "System Administrator" {
		t.Errorf("unexpected admin account: %+v", admin)
	}

	all, err := reports.All(ctx)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sample reports, got %d", len(all))
	}
	for _, r := range all {
		if r.ID == "" {
			t.Error("expected seeded reports to carry ids")
		}
		if r.Status != report.StatusFinished {
			t.Errorf("expected finished status, got %q", r.Status)
		}
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	users, reports := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := Run(ctx, users, reports, zerolog.Nop()); err != nil {
			t.Fatalf("run %d error: %v", i, err)
		}
	}

	seeded, _ := users.List(ctx)
	if len(seeded) != 3 {
		t.Errorf("expected 3 users after repeated runs, got %d", len(seeded))
	}
	all, _ := reports.All(ctx)
	if len(all) != 3 {
		t.Errorf("expected 3 reports after repeated runs, got %d", len(all))
	}
}

func TestRun_PreservesExistingData(t *testing.T) {
	users, reports := newFixture(t)
	ctx := context.Background()

	if err := users.SaveAll(ctx, []identity.User{
		{Username: "custom", Password: "pw", Role: "doctor", Name: "Dr. Custom"},
	}); err != nil {
		t.Fatalf("save users: %v", err)
	}

	if err := Run(ctx, users, reports, zerolog.Nop()); err != nil {
		t.Fatalf("run error: %v", err)
	}

	seeded, _ := users.List(ctx)
	if len(seeded) != 1 || seeded[0].Username != "custom" {
		t.Errorf("existing users must not be overwritten: %+v", seeded)
	}
}

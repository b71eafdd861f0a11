package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/userhub/userhub/internal/domain/user"
	"github.com/userhub/userhub/internal/repo/memory"
)

func seed(t *testing.T, r *memory.UsersRepo, name, email string) user.User {
	t.Helper()

	u, err := r.Create(context.Background(), user.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "secret1",
	}, "hashed-secret1")

	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	return u
}

func TestGetByEmailIsExactMatch(t *testing.T) {
	r := memory.NewUsersRepo()
	seed(t, r, "A", "A@x.com")

	// lookup is as-stored, no case normalization
	_, err := r.GetByEmail(context.Background(), "a@x.com")

	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for differently-cased email, got %v", err)
	}

	got, err := r.GetByEmail(context.Background(), "A@x.com")

	if err != nil {
		t.Fatalf("exact-case lookup failed: %v", err)
	}

	if got.Email != "A@x.com" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestListOrdersByIDDescending(t *testing.T) {
	r := memory.NewUsersRepo()

	seed(t, r, "A", "a@x.com")
	seed(t, r, "B", "b@x.com")
	seed(t, r, "C", "c@x.com")

	users, err := r.List(context.Background())

	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}

	for i := 1; i < len(users); i++ {
		if users[i-1].ID < users[i].ID {
			t.Fatalf("list not descending by id: %q before %q", users[i-1].ID, users[i].ID)
		}
	}
}

func TestDeleteMissingIDSucceeds(t *testing.T) {
	r := memory.NewUsersRepo()

	if err := r.Delete(context.Background(), "no-such-id"); err != nil {
		t.Fatalf("delete of missing id should succeed, got %v", err)
	}
}

func TestUpdateMissingIDFails(t *testing.T) {
	r := memory.NewUsersRepo()

	_, err := r.Update(context.Background(), "no-such-id", user.UpdateUserRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	}, "hashed")

	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mira-app/mira/internal/models"
)

type fakeAuthUserRepository struct {
	users  map[string]models.User
	nextID uint
}

func newFakeAuthUserRepository() *fakeAuthUserRepository {
	return &fakeAuthUserRepository{users: make(map[string]models.User)}
}

func (repo *fakeAuthUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	_, found := repo.users[email]
	return found, nil
}

func (repo *fakeAuthUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user, found := repo.users[email]
	if !found {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

func (repo *fakeAuthUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range repo.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("user not found")
}

func (repo *fakeAuthUserRepository) Create(user *models.User) error {
	repo.nextID++
	user.ID = repo.nextID
	repo.users[user.Email] = *user
	return nil
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newFakeAuthUserRepository()
	service := NewAuthService(repo, time.UTC)

	user, err := service.Register(" Ada@Example.COM ", "correct horse", "Ada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "correct horse" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAuthUserRepository()
	service := NewAuthService(repo, time.UTC)

	if _, err := service.Register("ada@example.com", "correct horse", "Ada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("ADA@example.com", "another pass", "Ada"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeAuthUserRepository()
	service := NewAuthService(repo, time.UTC)

	if _, err := service.Register("ada@example.com", "correct horse", "Ada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Authenticate("Ada@example.com", "correct horse"); err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if _, err := service.Authenticate("ada@example.com", "wrong pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

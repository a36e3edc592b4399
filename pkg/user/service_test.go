package user_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"groupstudy/pkg/user"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindByEmail(email string) (*user.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Create(u *user.User) error {
	return m.Called(u).Error(0)
}

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "new@b.com").Return(nil, user.ErrNotFound)
		repo.On("Create", mock.AnythingOfType("*user.User")).Return(nil)

		u, err := svc.Register("new@b.com", "securepass")

		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "new@b.com", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("securepass")))
		repo.AssertExpectations(t)
	})

	t.Run("already exists", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "old@b.com").Return(&user.User{Email: "old@b.com"}, nil)

		u, err := svc.Register("old@b.com", "securepass")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrExists)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("repo lookup error", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "new@b.com").Return(nil, errors.New("db_err"))

		u, err := svc.Register("new@b.com", "securepass")

		assert.Nil(t, u)
		assert.Error(t, err)
	})

	t.Run("repo create error", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "new@b.com").Return(nil, user.ErrNotFound)
		repo.On("Create", mock.AnythingOfType("*user.User")).Return(errors.New("db_err"))

		u, err := svc.Register("new@b.com", "securepass")

		assert.Nil(t, u)
		assert.Error(t, err)
	})
}

func TestService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &user.User{ID: "id-1", Email: "a@b.com", Password: string(hashed)}

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "a@b.com").Return(stored, nil)

		u, err := svc.Login("a@b.com", "securepass")

		assert.NoError(t, err)
		assert.Equal(t, stored, u)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "a@b.com").Return(stored, nil)

		u, err := svc.Login("a@b.com", "wrong")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "nobody@b.com").Return(nil, user.ErrNotFound)

		u, err := svc.Login("nobody@b.com", "securepass")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

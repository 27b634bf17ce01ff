package user

import (
	"context"
	"testing"

	"meditrip/models"
	"meditrip/services/booking"
	"meditrip/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Logger: zap.NewNop()}

	signedUp, err := svc.SignUp(context.Background(), "Patient@Example.com", "correct-horse", "Pat")
	require.NoError(t, err)
	assert.NotEmpty(t, signedUp.Token)
	assert.Equal(t, "patient@example.com", signedUp.User.Email)
	assert.Equal(t, "patient", signedUp.User.Role)
	assert.NotEqual(t, "correct-horse", signedUp.User.PasswordHash)

	// The issued token resolves back to the user id.
	sub, err := utils.VerifyToken(signedUp.Token)
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, sub)

	signedIn, err := svc.SignIn(context.Background(), "patient@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, signedIn.User.ID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Logger: zap.NewNop()}
	_, err := svc.SignUp(context.Background(), "a@b.com", "password1", "")
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), "a@b.com", "password2")
	var authErr *booking.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid email or password", authErr.Message)

	_, err = svc.SignIn(context.Background(), "unknown@b.com", "password1")
	require.ErrorAs(t, err, &authErr)
}

func TestSignUp_Validation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Logger: zap.NewNop()}

	_, err := svc.SignUp(context.Background(), "", "password1", "")
	var vErr *booking.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SignUp(context.Background(), "a@b.com", "short", "")
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SignUp(context.Background(), "a@b.com", "password1", "")
	require.NoError(t, err)
	_, err = svc.SignUp(context.Background(), "a@b.com", "password1", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Email is already registered", vErr.Message)
}

package service

import (
	"context"
	"errors"
	"testing"

	"art-collector/internal/domain/media"
	"art-collector/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	svc        *AccountService
	users      *fakeUsers
	pieces     *fakePieces
	storage    *fakeStorage
	mailer     *fakeMailer
	collection *CollectionService
}

func newAccountFixture(t *testing.T) accountFixture {
	t.Helper()
	f := accountFixture{
		users:   newFakeUsers(),
		pieces:  newFakePieces(),
		storage: &fakeStorage{},
		mailer:  &fakeMailer{},
	}
	f.collection = NewCollectionService(f.pieces, f.storage, &fakeSheets{}, t.TempDir(), logger.Nop())
	f.svc = NewAccountService(f.users, f.collection, f.mailer, logger.Nop())
	return f
}

func register(t *testing.T, f accountFixture, username string) string {
	t.Helper()
	u, err := f.svc.Register(context.Background(), RegisterForm{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	return u.ID
}

func TestAccountService_Register(t *testing.T) {
	f := newAccountFixture(t)

	id := register(t, f, "alice")

	stored, err := f.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", stored.Password, "password is hashed")
	assert.True(t, checkPassword(stored.Password, "s3cretpass"))

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "alice@example.com", f.mailer.sent[0].to)
	assert.Equal(t, "Welcome to artCollector", f.mailer.sent[0].subject)
}

func TestAccountService_Register_Validation(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.svc.Register(context.Background(), RegisterForm{Username: "a b", Email: "nope", Password: "short"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Messages, 3)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	f := newAccountFixture(t)
	register(t, f, "alice")

	_, err := f.svc.Register(context.Background(), RegisterForm{Username: "alice", Email: "other@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAccountService_Register_MailFailureIsNotFatal(t *testing.T) {
	f := newAccountFixture(t)
	f.mailer.err = errors.New("smtp down")

	_, err := f.svc.Register(context.Background(), RegisterForm{Username: "bob", Email: "bob@example.com", Password: "s3cretpass"})
	assert.NoError(t, err)
}

func TestAccountService_Authenticate(t *testing.T) {
	f := newAccountFixture(t)
	id := register(t, f, "alice")
	ctx := context.Background()

	u, err := f.svc.Authenticate(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = f.svc.Authenticate(ctx, "alice", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Authenticate(ctx, "nobody", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_UpdateProfileAndTable(t *testing.T) {
	f := newAccountFixture(t)
	id := register(t, f, "alice")
	register(t, f, "bob")
	ctx := context.Background()

	require.NoError(t, f.svc.UpdateProfile(ctx, id, ProfileForm{
		Username: "alice2", Email: "alice2@example.com", ShowName: "Alice L.", ContactInfo: "+48 000",
	}))
	require.NoError(t, f.svc.UpdateCustomTable(ctx, id, "title,artist,medium"))

	u, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice2", u.Username)
	assert.Equal(t, "Alice L.", u.DisplayName())
	assert.Equal(t, "title,artist,medium", u.CustomTable)

	err = f.svc.UpdateProfile(ctx, id, ProfileForm{Username: "bob", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAccountService_ChangePassword(t *testing.T) {
	f := newAccountFixture(t)
	id := register(t, f, "alice")
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.ChangePassword(ctx, id, "wrongpass1", "n3wpassword"), ErrInvalidCredentials)
	assert.ErrorIs(t, f.svc.ChangePassword(ctx, id, "s3cretpass", "weak"), ErrWeakPassword)

	require.NoError(t, f.svc.ChangePassword(ctx, id, "s3cretpass", "n3wpassword"))
	_, err := f.svc.Authenticate(ctx, "alice", "n3wpassword")
	assert.NoError(t, err)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	f := newAccountFixture(t)
	id := register(t, f, "alice")
	otherID := register(t, f, "bob")
	ctx := context.Background()

	_, err := f.collection.Create(ctx, id, validForm(), []media.Upload{upload("a.jpg"), upload("b.jpg")})
	require.NoError(t, err)
	_, err = f.collection.Create(ctx, otherID, validForm(), []media.Upload{upload("c.jpg")})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteAccount(ctx, id, "wrongpass1"), ErrInvalidCredentials)
	assert.Equal(t, 2, f.pieces.count())

	require.NoError(t, f.svc.DeleteAccount(ctx, id, "s3cretpass"))

	_, err = f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 1, f.pieces.count())
	assert.Len(t, f.storage.destroyed, 2)
}

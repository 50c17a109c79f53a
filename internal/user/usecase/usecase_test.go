package usecase

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/config"
	"github.com/oaksmart/pos-ledger/internal/storage"
	"github.com/oaksmart/pos-ledger/internal/user"
	"github.com/oaksmart/pos-ledger/internal/user/dto"
	userrepo "github.com/oaksmart/pos-ledger/internal/user/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := storage.Open(&config.SqliteConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func newUseCase(t *testing.T, db *sqlx.DB) user.UseCase {
	t.Helper()
	uc := NewUserUseCase(userrepo.NewSqliteRepository(db), zap.NewNop())
	require.NoError(t, uc.Bootstrap(context.Background(), "1234"))
	return uc
}

func TestBootstrap_CreatesDefaultAdminOnce(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	// A second bootstrap run is a no-op, even with a different PIN.
	require.NoError(t, uc.Bootstrap(context.Background(), "9999"))

	var count int
	require.NoError(t, db.Get(&count, `SELECT count(*) FROM users`))
	assert.Equal(t, 1, count)

	admin, err := uc.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestLogin_WrongPin(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.Login(context.Background(), "admin", "0000")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.Login(context.Background(), "ghost", "1234")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.Login(context.Background(), "", "1234")
	require.ErrorIs(t, err, ErrNameAndPinRequired)
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "amina", Pin: "2222",
		AdminName: "admin", AdminPin: "wrong",
	})
	require.ErrorIs(t, err, ErrAdminRequired)
}

func TestCreateUser_NonAdminCannotCreate(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "amina", Pin: "2222",
		AdminName: "admin", AdminPin: "1234",
	})
	require.NoError(t, err)

	_, err = uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "kofi", Pin: "3333",
		AdminName: "amina", AdminPin: "2222",
	})
	require.ErrorIs(t, err, ErrAdminRequired)
}

func TestCreateUser_ThenLogin(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	created, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "amina", Pin: "2222",
		AdminName: "admin", AdminPin: "1234",
	})
	require.NoError(t, err)
	assert.False(t, created.IsAdmin)

	u, err := uc.Login(context.Background(), "amina", "2222")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestCreateUser_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "amina", Pin: "2222",
		AdminName: "admin", AdminPin: "1234",
	})
	require.NoError(t, err)

	_, err = uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "amina", Pin: "5555",
		AdminName: "admin", AdminPin: "1234",
	})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestChangePin(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	require.NoError(t, uc.ChangePin(context.Background(), &dto.ChangePinInput{
		TargetName: "admin", NewPin: "4321",
		AdminName: "admin", AdminPin: "1234",
	}))

	_, err := uc.Login(context.Background(), "admin", "1234")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	u, err := uc.Login(context.Background(), "admin", "4321")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Name)
}

func TestChangePin_UnknownTarget(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	err := uc.ChangePin(context.Background(), &dto.ChangePinInput{
		TargetName: "ghost", NewPin: "4321",
		AdminName: "admin", AdminPin: "1234",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	uc := newUseCase(t, db)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Name: "amina", Pin: "2222",
		AdminName: "admin", AdminPin: "1234",
	})
	require.NoError(t, err)

	users, err := uc.ListUsers(context.Background(), "admin", "1234")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Name)
	assert.Equal(t, "amina", users[1].Name)
}

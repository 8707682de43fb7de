package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_UserLifecycle(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	user := testUser()
	_, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	found, err := repo.FindUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
	assert.Equal(t, models.RoleUser, found.Role)
	assert.True(t, user.CreatedAt.Equal(found.CreatedAt))

	contact := "+1 555 0100"
	updated, err := repo.UpdateUser(ctx, models.UserUpdate{UserID: user.UserID, Contact: &contact}, testTime.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, contact, updated.Contact)
	assert.Equal(t, user.Name, updated.Name)

	_, err = repo.FindUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_DuplicateEmailRejected(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	first := testUser()
	_, err := repo.CreateUser(ctx, first)
	require.NoError(t, err)

	second := testUser()
	second.UserID = "another-id"
	_, err = repo.CreateUser(ctx, second)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSQLite_ConcurrentSignupsSameEmail(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := testUser()
			u.UserID = "user-" + string(rune('a'+i))
			_, errs[i] = repo.CreateUser(ctx, u)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestSQLite_UpdateEmailCollision(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	a := testUser()
	b := testUser()
	b.UserID, b.Email = "user-b", "b@example.com"
	_, err := repo.CreateUser(ctx, a)
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, b)
	require.NoError(t, err)

	_, err = repo.UpdateUser(ctx, models.UserUpdate{UserID: b.UserID, Email: &a.Email}, testTime)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSQLite_ItemsAndNotes(t *testing.T) {
	db := newSQLiteTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db, logger.Nop())
	items := NewItemRepository(db, logger.Nop())
	notes := NewNotesRepository(db, logger.Nop())

	owner := testUser()
	owner.UserID = "user-1"
	_, err := users.CreateUser(ctx, owner)
	require.NoError(t, err)

	lost := testItem()
	found := testItem()
	found.ID, found.ItemName, found.ItemType, found.Images = "item-2", "Wallet", models.ItemFound, nil
	found.Date = testTime.Add(time.Hour)

	_, err = items.CreateItem(ctx, lost)
	require.NoError(t, err)
	_, err = items.CreateItem(ctx, found)
	require.NoError(t, err)

	dup := testItem()
	dup.ID = "item-3"
	_, err = items.CreateItem(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	orphan := testItem()
	orphan.ID, orphan.ItemName, orphan.UserID = "item-4", "Orphan", "nobody"
	_, err = items.CreateItem(ctx, orphan)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := items.ListItems(ctx, models.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "item-2", all[0].ID, "newest first")
	assert.Empty(t, all[0].Images)
	assert.Equal(t, lost.Images, all[1].Images)

	onlyLost, err := items.ListItems(ctx, models.ItemFilter{Type: models.ItemLost})
	require.NoError(t, err)
	require.Len(t, onlyLost, 1)
	assert.Equal(t, "item-1", onlyLost[0].ID)

	_, err = notes.CreateNotes(ctx, testNotes())
	require.NoError(t, err)
	again := testNotes()
	again.ID, again.Slug = "notes-2", "campus-map-ffffffff"
	_, err = notes.CreateNotes(ctx, again)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	list, err := notes.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, UniqueViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.Equal(t, ForeignKeyViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(assert.AnError))
}

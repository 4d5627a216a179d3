package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidserver/onbid"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDBWithConfig(":memory:", DBConfig{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

// TestCreateUser_AndLookup созданный пользователь находится по имени
func TestCreateUser_AndLookup(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateUser("huch", "hash", "salt")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	user, err := db.GetUserByUsername("huch")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, "salt", user.Salt)
}

// TestCreateUser_Duplicate повторное имя дает ErrUserExists
func TestCreateUser_Duplicate(t *testing.T) {
	db := newTestDB(t)

	_, err := db.CreateUser("huch", "hash", "salt")
	require.NoError(t, err)

	_, err = db.CreateUser("huch", "hash2", "salt2")
	assert.ErrorIs(t, err, ErrUserExists)
}

// TestGetUserByUsername_NotFound отсутствующий пользователь дает ErrUserNotFound
func TestGetUserByUsername_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetUserByUsername("нет такого")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestFavorites_RoundTrip сохранение, чтение и удаление тендера
func TestFavorites_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	userID, err := db.CreateUser("huch", "hash", "salt")
	require.NoError(t, err)

	deadline := time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC)
	tenderID := int64(2025001)
	tender := onbid.Tender{
		TenderID:     &tenderID,
		ManagementNo: strPtr("2024-05100-001"),
		Title:        "서울 아파트",
		Organization: "매각",
		DeadlineAt:   &deadline,
	}

	favID, err := db.AddFavorite(userID, tender)
	require.NoError(t, err)

	favorites, err := db.ListFavorites(userID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, favID, favorites[0].ID)
	assert.Equal(t, "서울 아파트", favorites[0].Tender.Title)
	require.NotNil(t, favorites[0].Tender.TenderID)
	assert.Equal(t, int64(2025001), *favorites[0].Tender.TenderID)
	require.NotNil(t, favorites[0].Tender.DeadlineAt)
	assert.True(t, deadline.Equal(*favorites[0].Tender.DeadlineAt))

	require.NoError(t, db.DeleteFavorite(userID, favID))

	favorites, err = db.ListFavorites(userID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

// TestAddFavorite_DuplicateManagementNo один и тот же объект нельзя сохранить дважды
func TestAddFavorite_DuplicateManagementNo(t *testing.T) {
	db := newTestDB(t)
	userID, err := db.CreateUser("huch", "hash", "salt")
	require.NoError(t, err)

	tender := onbid.Tender{ManagementNo: strPtr("A100"), Title: "объект"}

	_, err = db.AddFavorite(userID, tender)
	require.NoError(t, err)

	_, err = db.AddFavorite(userID, tender)
	assert.ErrorIs(t, err, ErrFavoriteExists)
}

// TestDeleteFavorite_WrongUser чужой тендер удалить нельзя
func TestDeleteFavorite_WrongUser(t *testing.T) {
	db := newTestDB(t)
	ownerID, err := db.CreateUser("owner", "hash", "salt")
	require.NoError(t, err)
	otherID, err := db.CreateUser("other", "hash", "salt")
	require.NoError(t, err)

	favID, err := db.AddFavorite(ownerID, onbid.Tender{Title: "объект"})
	require.NoError(t, err)

	err = db.DeleteFavorite(otherID, favID)
	assert.True(t, errors.Is(err, ErrFavoriteNotFound))
}

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable      = "users"
	itemsTable      = "items"
	itemImagesTable = "item_images"
	notesTable      = "notes"
)

var (
	userColumns = []string{
		"id", "name", "username", "email", "password_hash", "role",
		"contact", "gender", "profile_picture", "created_at", "updated_at",
	}

	itemColumns = []string{
		"id", "user_id", "item_name", "description", "item_type", "question",
		"item_status", "date", "created_at", "updated_at",
	}

	itemImageColumns = []string{"item_id", "position", "filename"}

	notesColumns = []string{
		"id", "title", "slug", "notes_link", "notes_image", "created_at", "updated_at",
	}
)

// ── users ──

func (db *DB) buildInsertUserQuery(u models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(u.UserID, u.Name, u.Username, u.Email, u.PasswordHash, string(u.Role),
			u.Contact, u.Gender, u.ProfilePicture, u.CreatedAt, u.UpdatedAt).
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func (db *DB) buildListUsersQuery() (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// buildUpdateUserQuery sets only the fields present in update.
func (db *DB) buildUpdateUserQuery(update models.UserUpdate, updatedAt time.Time) (string, []any, error) {
	set := make(map[string]any, 7)

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.Contact != nil {
		set["contact"] = *update.Contact
	}
	if update.ProfilePicture != nil {
		set["profile_picture"] = *update.ProfilePicture
	}

	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}
	set["updated_at"] = updatedAt

	return db.builder.
		Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": update.UserID}).
		ToSql()
}

// ── items ──

func (db *DB) buildInsertItemQuery(i models.Item) (string, []any, error) {
	return db.builder.
		Insert(itemsTable).
		Columns(itemColumns...).
		Values(i.ID, i.UserID, i.ItemName, i.Description, string(i.ItemType), i.Question,
			string(i.ItemStatus), i.Date, i.CreatedAt, i.UpdatedAt).
		ToSql()
}

func (db *DB) buildInsertItemImagesQuery(itemID string, images []models.ItemImage) (string, []any, error) {
	if len(images) == 0 {
		return "", nil, fmt.Errorf("%w: no images", ErrBuildingSQLQuery)
	}

	q := db.builder.Insert(itemImagesTable).Columns(itemImageColumns...)
	for pos, img := range images {
		q = q.Values(itemID, pos, img.Img)
	}

	return q.ToSql()
}

func (db *DB) buildSelectItemsQuery(filter models.ItemFilter) (string, []any, error) {
	q := db.builder.
		Select(itemColumns...).
		From(itemsTable).
		OrderBy("date DESC", "id DESC")

	if filter.Type != "" {
		q = q.Where(sq.Eq{"item_type": string(filter.Type)})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"item_status": string(filter.Status)})
	}

	return q.ToSql()
}

func (db *DB) buildSelectItemImagesQuery(itemIDs []string) (string, []any, error) {
	return db.builder.
		Select(itemImageColumns...).
		From(itemImagesTable).
		Where(sq.Eq{"item_id": itemIDs}).
		OrderBy("item_id", "position").
		ToSql()
}

// ── notes ──

func (db *DB) buildInsertNotesQuery(n models.Notes) (string, []any, error) {
	return db.builder.
		Insert(notesTable).
		Columns(notesColumns...).
		Values(n.ID, n.Title, n.Slug, n.NotesLink, n.NotesImage, n.CreatedAt, n.UpdatedAt).
		ToSql()
}

func (db *DB) buildListNotesQuery() (string, []any, error) {
	return db.builder.
		Select(notesColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/avolkhin/notekeeper/models"
)

const (
	createUser = `INSERT INTO users (full_name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, full_name, email, password_hash, created_on;`

	findUserByEmail = `SELECT user_id, full_name, email, password_hash, created_on
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, full_name, email, password_hash, created_on
    FROM users
    WHERE user_id = $1;`

	createNote = `INSERT INTO notes (user_id, title, content, tags, is_pinned)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING note_id, user_id, title, content, tags, is_pinned, created_on;`

	findNote = `SELECT note_id, user_id, title, content, tags, is_pinned, created_on
    FROM notes
    WHERE note_id = $1 AND user_id = $2;`

	listNotes = `SELECT note_id, user_id, title, content, tags, is_pinned, created_on
    FROM notes
    WHERE user_id = $1
    ORDER BY is_pinned DESC, created_on DESC, note_id DESC;`

	deleteNote = `DELETE FROM notes
    WHERE note_id = $1 AND user_id = $2;`
)

// noteColumns lists the note table columns in scan order.
var noteColumns = []string{"note_id", "user_id", "title", "content", "tags", "is_pinned", "created_on"}

// psql builds queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateNoteQuery builds a partial UPDATE for the non-nil fields of
// update, scoped by (note_id, user_id) and returning the updated row.
//
// Returns ErrBuildingSQLQuery when the update carries no field changes.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update("notes")

	changed := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		changed = true
	}
	if update.Tags != nil {
		builder = builder.Set("tags", *update.Tags)
		changed = true
	}
	if update.IsPinned != nil {
		builder = builder.Set("is_pinned", *update.IsPinned)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"note_id": update.NoteID, "user_id": update.UserID}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
}

// buildSearchNotesQuery builds a SELECT for all notes owned by userID whose
// title or content contains query as a case-insensitive substring. LIKE
// metacharacters in query are escaped so they match literally.
func buildSearchNotesQuery(userID int64, query string) (string, []any, error) {
	pattern := "%" + escapeLike(query) + "%"

	return psql.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		}).
		OrderBy("is_pinned DESC", "created_on DESC", "note_id DESC").
		ToSql()
}

// escapeLike escapes the LIKE/ILIKE metacharacters so a user-supplied search
// string is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	insertResponse = `INSERT INTO responses (
		first_name,
		last_name,
		email,
		whatsapp,
		city,
		state,
		movement,
		union_name,
		category,
		employer,
		studying,
		course,
		institution,
		message,
		image_path,
		ip_address,
		created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getResponseByID = `SELECT id, first_name, last_name, email, whatsapp, city, state, movement,
		union_name, category, employer, studying, course, institution, message,
		image_path, ip_address, created_at
	FROM responses
	WHERE id = ?;`

	insertAdminUser = `INSERT INTO admin_users (username, password_hash, is_active, created_at)
	VALUES (?, ?, ?, ?);`

	getAdminUserByUsername = `SELECT id, username, password_hash, is_active, created_at, last_login
	FROM admin_users
	WHERE username = ?;`

	countAdminUsers = `SELECT COUNT(*) FROM admin_users;`

	updateAdminLastLogin = `UPDATE admin_users SET last_login = ? WHERE id = ?;`
)

// responseColumns is the canonical column order for responses scans.
var responseColumns = []string{
	"id", "first_name", "last_name", "email", "whatsapp", "city", "state",
	"movement", "union_name", "category", "employer", "studying", "course",
	"institution", "message", "image_path", "ip_address", "created_at",
}

// searchFilter builds the OR-combined case-insensitive substring match over
// the five searchable response fields.
func searchFilter(query string) sq.Or {
	pattern := "%" + strings.ToLower(query) + "%"

	return sq.Or{
		sq.Like{"LOWER(first_name)": pattern},
		sq.Like{"LOWER(last_name)": pattern},
		sq.Like{"LOWER(email)": pattern},
		sq.Like{"LOWER(city)": pattern},
		sq.Like{"LOWER(employer)": pattern},
	}
}

// buildSearchQuery produces the paginated search SELECT. An empty query
// matches every row. Rows are ordered newest-first; the id tiebreaker keeps
// ordering stable for rows inserted within the same timestamp.
func buildSearchQuery(query string, limit, offset int) (string, []any, error) {
	builder := sq.Select(responseColumns...).
		From("responses").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if query != "" {
		builder = builder.Where(searchFilter(query))
	}

	return builder.ToSql()
}

// buildCountQuery produces the matching-rows COUNT for the same filter as
// [buildSearchQuery].
func buildCountQuery(query string) (string, []any, error) {
	builder := sq.Select("COUNT(*)").From("responses")

	if query != "" {
		builder = builder.Where(searchFilter(query))
	}

	return builder.ToSql()
}

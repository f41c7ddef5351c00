package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/devanshioza/skillfolio/skillz"
)

////////////////////////////////////////////////////////////////////////

// DBTX is satisfied by both the pool and a transaction, so every query
// works inside and outside execTx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries holds the hand-written SQL against one DBTX.
type Queries struct {
	db DBTX
}

// New creates a Queries bound to the given connection or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

////////////////////////////////////////////////////////////////////////
// Users
////////////////////////////////////////////////////////////////////////

// CreateUserParams contains the fields needed to register a user.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Branch       string
	Year         int32
}

const createUser = `
INSERT INTO users (id, name, email, password_hash, branch, year)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, email, password_hash, branch, year,
          github_url, linkedin_url, leetcode_url, created_at
`

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		uuid.New(), arg.Name, arg.Email, arg.PasswordHash, arg.Branch, arg.Year,
	)
	return scanUser(row)
}

const getUser = `
SELECT id, name, email, password_hash, branch, year,
       github_url, linkedin_url, leetcode_url, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUser, id))
}

const getUserByEmail = `
SELECT id, name, email, password_hash, branch, year,
       github_url, linkedin_url, leetcode_url, created_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
}

// UpdateUserLinksParams carries the profile links submitted for analysis.
type UpdateUserLinksParams struct {
	ID          uuid.UUID
	GithubURL   string
	LinkedinURL string
	LeetcodeURL string
}

const updateUserLinks = `
UPDATE users
SET github_url = $2, linkedin_url = $3, leetcode_url = $4
WHERE id = $1
`

func (q *Queries) UpdateUserLinks(ctx context.Context, arg UpdateUserLinksParams) error {
	tag, err := q.db.Exec(ctx, updateUserLinks, arg.ID, arg.GithubURL, arg.LinkedinURL, arg.LeetcodeURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Branch, &u.Year,
		&u.GithubURL, &u.LinkedinURL, &u.LeetcodeURL, &u.CreatedAt,
	)
	return u, err
}

////////////////////////////////////////////////////////////////////////
// Skill profiles
////////////////////////////////////////////////////////////////////////

const saveSkillProfile = `
INSERT INTO profiles (user_id, profile, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE
SET profile = EXCLUDED.profile, updated_at = now()
`

// SaveSkillProfile stores the latest analysis result for a user, replacing
// any previous one.
func (q *Queries) SaveSkillProfile(ctx context.Context, userID uuid.UUID, profile skillz.SkillProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal skill profile: %w", err)
	}
	_, err = q.db.Exec(ctx, saveSkillProfile, userID, payload)
	return err
}

const getSkillProfile = `
SELECT profile FROM profiles WHERE user_id = $1
`

// GetSkillProfile returns the stored analysis result for a user.
// pgx.ErrNoRows when the user has never been analyzed.
func (q *Queries) GetSkillProfile(ctx context.Context, userID uuid.UUID) (skillz.SkillProfile, error) {
	var payload []byte
	if err := q.db.QueryRow(ctx, getSkillProfile, userID).Scan(&payload); err != nil {
		return skillz.SkillProfile{}, err
	}
	var profile skillz.SkillProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return skillz.SkillProfile{}, fmt.Errorf("failed to unmarshal stored skill profile: %w", err)
	}
	return profile, nil
}

////////////////////////////////////////////////////////////////////////
// Discovery
////////////////////////////////////////////////////////////////////////

const listStudents = `
SELECT u.id, u.name, u.branch, u.year, p.profile
FROM users u
JOIN profiles p ON p.user_id = u.id
ORDER BY u.created_at DESC
LIMIT $1 OFFSET $2
`

// ListStudents returns discovery cards for users with an analyzed profile,
// newest accounts first.
func (q *Queries) ListStudents(ctx context.Context, limit, offset int32) ([]StudentCard, error) {
	rows, err := q.db.Query(ctx, listStudents, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []StudentCard{}
	for rows.Next() {
		var (
			card    StudentCard
			payload []byte
		)
		if err := rows.Scan(&card.ID, &card.Name, &card.Branch, &card.Year, &payload); err != nil {
			return nil, err
		}
		var profile skillz.SkillProfile
		if err := json.Unmarshal(payload, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored skill profile: %w", err)
		}
		card.OverallRating = profile.OverallRating
		card.ProfileSummary = profile.ProfileSummary
		card.Skills = profile.Skills
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

////////////////////////////////////////////////////////////////////////
// Direct messages
////////////////////////////////////////////////////////////////////////

// CreateMessageParams carries one outgoing direct message.
type CreateMessageParams struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
}

const createMessage = `
INSERT INTO messages (id, sender_id, recipient_id, body)
VALUES ($1, $2, $3, $4)
RETURNING id, sender_id, recipient_id, body, created_at
`

func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	var m Message
	err := q.db.QueryRow(ctx, createMessage, uuid.New(), arg.SenderID, arg.RecipientID, arg.Body).
		Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt)
	return m, err
}

const listConversation = `
SELECT id, sender_id, recipient_id, body, created_at
FROM messages
WHERE (sender_id = $1 AND recipient_id = $2)
   OR (sender_id = $2 AND recipient_id = $1)
ORDER BY created_at ASC
LIMIT $3
`

// ListConversation returns the messages exchanged between two users in
// chronological order.
func (q *Queries) ListConversation(ctx context.Context, a, b uuid.UUID, limit int32) ([]Message, error) {
	rows, err := q.db.Query(ctx, listConversation, a, b, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

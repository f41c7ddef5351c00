package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devanshioza/skillfolio/skillz"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute db queries and transactions.
type Store struct {
	*Queries
	dbpool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(dbpool *pgxpool.Pool) *Store {
	return &Store{
		dbpool:  dbpool,
		Queries: New(dbpool),
	}
}

// execTx executes a function within a database transaction.
func (s *Store) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction has been committed.

	q := New(tx)
	if err := fn(q); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

////////////////////////////////////////////////////////////////////////
// Transaction: SaveAnalysisTx
////////////////////////////////////////////////////////////////////////

// SaveAnalysisTxParams contains the parameters for persisting a freshly
// built skill profile together with the links it was built from.
type SaveAnalysisTxParams struct {
	UserID      uuid.UUID
	GithubURL   string
	LinkedinURL string
	LeetcodeURL string
	Profile     skillz.SkillProfile
}

// SaveAnalysisTx stores the submitted profile links and the analyzed skill
// profile atomically, so a card in the discovery view never shows links
// from one analysis and skills from another.
func (s *Store) SaveAnalysisTx(ctx context.Context, arg SaveAnalysisTxParams) error {
	return s.execTx(ctx, func(q *Queries) error {
		err := q.UpdateUserLinks(ctx, UpdateUserLinksParams{
			ID:          arg.UserID,
			GithubURL:   arg.GithubURL,
			LinkedinURL: arg.LinkedinURL,
			LeetcodeURL: arg.LeetcodeURL,
		})
		if err != nil {
			return fmt.Errorf("failed to update profile links: %w", err)
		}
		if err := q.SaveSkillProfile(ctx, arg.UserID, arg.Profile); err != nil {
			return fmt.Errorf("failed to save skill profile: %w", err)
		}
		return nil
	})
}

////////////////////////////////////////////////////////////////////////
// Mentor profile lookup
////////////////////////////////////////////////////////////////////////

// GetStudentContext implements skillz.ProfileDirectory: it assembles the
// profile context the mentor's lookup capability injects into a chat turn.
// A user without a stored analysis is an error, so the mentor knows the
// personalization step failed.
func (s *Store) GetStudentContext(ctx context.Context, userID string) (skillz.UserProfileContext, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return skillz.UserProfileContext{}, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skillz.UserProfileContext{}, fmt.Errorf("user %s not found", userID)
		}
		return skillz.UserProfileContext{}, err
	}

	profile, err := s.GetSkillProfile(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skillz.UserProfileContext{}, fmt.Errorf("user %s has no analyzed profile yet", userID)
		}
		return skillz.UserProfileContext{}, err
	}

	return skillz.UserProfileContext{
		Name:           user.Name,
		Branch:         user.Branch,
		Year:           int(user.Year),
		OverallRating:  profile.OverallRating,
		ProfileSummary: profile.ProfileSummary,
		Skills:         profile.Skills,
	}, nil
}

package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/devanshioza/skillfolio/skillz"
	"github.com/devanshioza/skillfolio/util"
)

func createRandomUser(t *testing.T) User {
	t.Helper()

	hash, err := util.HashPassword(util.RandomString(10))
	require.NoError(t, err)

	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Name:         util.RandomName(),
		Email:        util.RandomEmail(),
		PasswordHash: hash,
		Branch:       "CSE",
		Year:         3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	return user
}

func randomProfile() skillz.SkillProfile {
	return skillz.SkillProfile{
		Skills: []skillz.SkillRecord{
			{Name: util.RandomSkill(), Rating: util.RandomRating(), Evidence: "seen in test data"},
		},
		ProfileSummary: "A promising student.",
		OverallRating:  float64(util.RandomRating()),
	}
}

func TestCreateAndGetUser(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)

	got, err := testStore.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)

	byEmail, err := testStore.GetUserByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestSaveSkillProfileReplacesPrevious(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)

	first := randomProfile()
	require.NoError(t, testStore.SaveSkillProfile(context.Background(), user.ID, first))

	second := randomProfile()
	second.ProfileSummary = "Re-analyzed."
	require.NoError(t, testStore.SaveSkillProfile(context.Background(), user.ID, second))

	got, err := testStore.GetSkillProfile(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "Re-analyzed.", got.ProfileSummary)
}

func TestGetSkillProfileNotAnalyzed(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)

	_, err := testStore.GetSkillProfile(context.Background(), user.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestSaveAnalysisTx(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)

	github := util.RandomURL()
	err := testStore.SaveAnalysisTx(context.Background(), SaveAnalysisTxParams{
		UserID:    user.ID,
		GithubURL: github,
		Profile:   randomProfile(),
	})
	require.NoError(t, err)

	got, err := testStore.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, github, got.GithubURL)

	_, err = testStore.GetSkillProfile(context.Background(), user.ID)
	require.NoError(t, err)
}

func TestGetStudentContext(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)

	profile := randomProfile()
	require.NoError(t, testStore.SaveSkillProfile(context.Background(), user.ID, profile))

	got, err := testStore.GetStudentContext(context.Background(), user.ID.String())
	require.NoError(t, err)
	require.Equal(t, user.Name, got.Name)
	require.Equal(t, profile.ProfileSummary, got.ProfileSummary)
	require.Len(t, got.Skills, len(profile.Skills))
}

func TestGetStudentContextWithoutProfile(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)

	_, err := testStore.GetStudentContext(context.Background(), user.ID.String())
	require.Error(t, err, "a user without an analyzed profile must surface as a lookup failure")
}

func TestListStudents(t *testing.T) {
	requireTestDB(t)
	user := createRandomUser(t)
	require.NoError(t, testStore.SaveSkillProfile(context.Background(), user.ID, randomProfile()))

	cards, err := testStore.ListStudents(context.Background(), 50, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cards)

	var found bool
	for _, card := range cards {
		if card.ID == user.ID {
			found = true
			require.Equal(t, user.Name, card.Name)
			require.NotEmpty(t, card.Skills)
		}
	}
	require.True(t, found)
}

func TestMessages(t *testing.T) {
	requireTestDB(t)
	alice := createRandomUser(t)
	bob := createRandomUser(t)

	first, err := testStore.CreateMessage(context.Background(), CreateMessageParams{
		SenderID:    alice.ID,
		RecipientID: bob.ID,
		Body:        "hey, saw your profile on discover",
	})
	require.NoError(t, err)

	second, err := testStore.CreateMessage(context.Background(), CreateMessageParams{
		SenderID:    bob.ID,
		RecipientID: alice.ID,
		Body:        "thanks!",
	})
	require.NoError(t, err)

	// Both directions of the conversation, oldest first.
	messages, err := testStore.ListConversation(context.Background(), alice.ID, bob.ID, 100)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, first.ID, messages[0].ID)
	require.Equal(t, second.ID, messages[1].ID)
}

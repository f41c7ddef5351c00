package skillz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/skillz"
)

func TestMentorFeedback(t *testing.T) {
	client := &mockLLMClient{response: `{"feedback": "Good week. Turn the scraper into a reusable package and add tests."}`}

	feedback, err := skillz.MentorFeedback(
		context.Background(),
		client,
		"Built a small web scraper and read about goroutines.",
		[]string{"Go", "HTML"},
	)
	require.NoError(t, err)
	require.Equal(t, "Good week. Turn the scraper into a reusable package and add tests.", feedback)
}

func TestMentorFeedbackEmptyOutputViolatesSchema(t *testing.T) {
	client := &mockLLMClient{response: `{"feedback": ""}`}

	_, err := skillz.MentorFeedback(context.Background(), client, "Did nothing.", nil)
	var schemaErr *genai.SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
}

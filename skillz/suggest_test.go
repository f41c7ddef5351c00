package skillz_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/skillz"
)

func TestSuggestSkills(t *testing.T) {
	testCases := []struct {
		name         string
		descriptions []string
		publicData   string
		mockResponse string
		mockErr      error
		want         []string
		wantErr      bool
	}{
		{
			name:         "Happy Path",
			descriptions: []string{"Built a REST API with Gin and PostgreSQL"},
			publicData:   "Active open-source contributor",
			mockResponse: `{"suggestedSkills": ["Gin", "PostgreSQL", "REST API Design"]}`,
			want:         []string{"Gin", "PostgreSQL", "REST API Design"},
		},
		{
			name:         "Empty Input Is Valid",
			mockResponse: `{"suggestedSkills": []}`,
			want:         []string{},
		},
		{
			name:         "Missing List Becomes Empty",
			mockResponse: `{}`,
			want:         []string{},
		},
		{
			name:         "Duplicates Pass Through Unchanged",
			descriptions: []string{"React dashboard", "React admin panel"},
			mockResponse: `{"suggestedSkills": ["React", "React"]}`,
			want:         []string{"React", "React"},
		},
		{
			name:    "Backend Error Propagates",
			mockErr: errors.New("API is down"),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &mockLLMClient{response: tc.mockResponse, err: tc.mockErr}

			got, err := skillz.SuggestSkills(context.Background(), client, tc.descriptions, tc.publicData)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMergeSuggestions(t *testing.T) {
	a := []string{"React", "Node"}
	b := []string{"Node", "SQL"}

	require.Equal(t, []string{"React", "Node", "SQL"}, skillz.MergeSuggestions(a, b))

	// The merged set is the same regardless of call order.
	require.ElementsMatch(t, skillz.MergeSuggestions(a, b), skillz.MergeSuggestions(b, a))

	require.Empty(t, skillz.MergeSuggestions())
	require.Equal(t, []string{"Go"}, skillz.MergeSuggestions([]string{"Go", "Go"}, nil))
}

func TestSuggestFromSources(t *testing.T) {
	client := &mockLLMClient{
		respond: func(req genai.GenerateRequest) (string, error) {
			switch {
			case strings.Contains(prompt(req), "open source Go repositories"):
				return `{"suggestedSkills": ["React", "Node"]}`, nil
			case strings.Contains(prompt(req), "competitive programming"):
				return `{"suggestedSkills": ["Node", "SQL"]}`, nil
			default:
				return "", errors.New("unexpected prompt")
			}
		},
	}

	got, err := skillz.SuggestFromSources(
		context.Background(),
		client,
		[]string{"A chat app"},
		"open source Go repositories",
		"competitive programming",
	)
	require.NoError(t, err)

	// Two independent analyses, merged with duplicates removed by name.
	require.Equal(t, []string{"React", "Node", "SQL"}, got)
	require.Equal(t, 2, client.callCount())
}

func TestSuggestFromSourcesPropagatesFailure(t *testing.T) {
	client := &mockLLMClient{err: errors.New("quota exceeded")}

	_, err := skillz.SuggestFromSources(context.Background(), client, nil, "github data", "public data")
	require.Error(t, err)
}

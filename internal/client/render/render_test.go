package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hackline/internal/client/models"
)

func TestHostName(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"scheme and path", "https://www.example.com/a/b", "example.com"},
		{"no scheme with path", "example.com/x", "example.com"},
		{"subdomain no path", "https://sub.example.com", "sub.example.com"},
		{"bare host", "example.com", "example.com"},
		{"www without scheme", "www.example.com/x", "example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HostName(tt.url))
		})
	}
}

func TestStoryIcon_LoggedOut(t *testing.T) {
	s := models.Story{StoryID: "1", URL: "https://example.com"}
	assert.Equal(t, IconHeartOutline, StoryIcon(s, nil, ContextAll))
	assert.Equal(t, IconHeartOutline, StoryIcon(s, nil, ContextFilter))
}

func TestStoryIcon_OwnStoryInFilterContext(t *testing.T) {
	s := models.Story{StoryID: "1", Username: "alice"}
	u := &models.User{Username: "alice", OwnStories: []models.Story{s}}

	assert.Equal(t, IconTrash, StoryIcon(s, u, ContextFilter))
	// Outside the own-stories view the heart wins even for own stories.
	assert.Equal(t, IconHeartOutline, StoryIcon(s, u, ContextAll))
}

func TestStoryIcon_Favorites(t *testing.T) {
	fav := models.Story{StoryID: "1"}
	other := models.Story{StoryID: "2"}
	u := &models.User{Username: "alice", Favorites: []models.Story{fav}}

	assert.Equal(t, IconHeartFilled, StoryIcon(fav, u, ContextAll))
	assert.Equal(t, IconHeartOutline, StoryIcon(other, u, ContextAll))
}

func TestStory_Fragment(t *testing.T) {
	s := models.Story{
		StoryID:  "abc",
		Title:    "Interesting",
		Author:   "Jane Doe",
		URL:      "https://www.example.com/post",
		Username: "jane",
	}
	got := Story(s, nil, ContextAll)

	require.True(t, strings.HasPrefix(got, string(IconHeartOutline)))
	assert.Contains(t, got, "Interesting")
	assert.Contains(t, got, "(example.com)")
	assert.Contains(t, got, "by Jane Doe")
	assert.Contains(t, got, "posted by jane")
	assert.Contains(t, got, "id abc")
}

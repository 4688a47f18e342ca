package models

import "time"

// Story is a single submitted link as returned by the server. Stories are
// immutable on the client; the only mutation is an explicit delete, which is
// performed server-side and then reflected in the cached views.
type Story struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewStory holds the user-supplied fields of a story submission. The server
// assigns the id and the submitter username.
type NewStory struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// StoryList is the client-side cache of the full story feed. It is replaced
// wholesale by every fetch; submissions and deletes patch it in place.
type StoryList struct {
	Stories []Story
}

// Prepend inserts s at the head of the list, matching the feed ordering for
// a freshly submitted story.
func (l *StoryList) Prepend(s Story) {
	l.Stories = append([]Story{s}, l.Stories...)
}

// Remove drops the story with the given id, if present.
func (l *StoryList) Remove(storyID string) {
	l.Stories = removeByID(l.Stories, storyID)
}

func removeByID(stories []Story, storyID string) []Story {
	out := stories[:0]
	for _, s := range stories {
		if s.StoryID != storyID {
			out = append(out, s)
		}
	}
	return out
}

package models

// User is the current authenticated identity together with its favorite and
// own-story lists. Favorites and OwnStories reference stories owned by the
// feed; they are patched locally only after the corresponding remote call
// succeeded.
type User struct {
	Username   string  `json:"username"`
	Name       string  `json:"name"`
	Favorites  []Story `json:"favorites"`
	OwnStories []Story `json:"stories"`

	// Token is the opaque credential issued at login. It is never part of
	// the user record on the wire.
	Token string `json:"-"`
}

// IsFavorite reports whether the story id appears in the user's favorites.
func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// Owns reports whether the story id appears in the user's own submissions.
func (u *User) Owns(storyID string) bool {
	for _, s := range u.OwnStories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddFavorite appends the story to the favorites list. Adding a story that
// is already favorited is a no-op.
func (u *User) AddFavorite(s Story) {
	if u.IsFavorite(s.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, s)
}

// RemoveFavorite drops the story from the favorites list, if present.
func (u *User) RemoveFavorite(storyID string) {
	u.Favorites = removeByID(u.Favorites, storyID)
}

// RemoveStory drops the story from every list the user holds.
func (u *User) RemoveStory(storyID string) {
	u.Favorites = removeByID(u.Favorites, storyID)
	u.OwnStories = removeByID(u.OwnStories, storyID)
}

// Package render turns stories into display fragments. Everything here is a
// pure function of its inputs so icon selection and hostname extraction can
// be tested without a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hackline/internal/client/models"
)

// Context selects which view a story is rendered for. The own-stories view
// replaces the favorite affordance with a delete affordance.
type Context string

const (
	ContextAll    Context = "all"
	ContextFilter Context = "filter"
)

// Icon is the affordance glyph shown next to a story.
type Icon string

const (
	IconHeartOutline Icon = "♡"
	IconHeartFilled  Icon = "♥"
	IconTrash        Icon = "🗑"
)

// StoryIcon picks the affordance for a story given the viewer and context:
//
//   - no authenticated viewer: outlined heart, no delete affordance;
//   - own story in the filter (own-stories) context: trash;
//   - otherwise: heart, filled iff the story is in the viewer's favorites.
func StoryIcon(story models.Story, viewer *models.User, c Context) Icon {
	if viewer == nil {
		return IconHeartOutline
	}
	if c == ContextFilter && viewer.Owns(story.StoryID) {
		return IconTrash
	}
	if viewer.IsFavorite(story.StoryID) {
		return IconHeartFilled
	}
	return IconHeartOutline
}

// Story renders a single story line for the given viewer and context.
func Story(story models.Story, viewer *models.User, c Context) string {
	return fmt.Sprintf("%s %s (%s)\n    by %s | posted by %s | id %s",
		StoryIcon(story, viewer, c), story.Title, HostName(story.URL),
		story.Author, story.Username, story.StoryID)
}

// HostName pulls the host out of a URL: the authority segment after the
// scheme separator (or the whole string up to the first slash when there is
// no scheme), with a leading "www." stripped.
func HostName(rawURL string) string {
	host := rawURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}

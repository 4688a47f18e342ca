package cli

import (
	"fmt"

	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/client/render"
)

// Region is a view region of the UI. Exactly one region is visible at a
// time; showRegion is the single place that switches them, so no handler
// can leave two regions showing.
type Region int

const (
	RegionStories Region = iota
	RegionFavorites
	RegionOwnStories
)

// showRegion makes r the active region and draws it.
func (a *App) showRegion(r Region) {
	a.activeRegion = r
	a.renderRegion()
}

// renderRegion redraws the active region from current state. Mutating
// handlers call it after the remote call has finished, never before, so the
// screen cannot show state the server has not confirmed.
func (a *App) renderRegion() {
	switch a.activeRegion {
	case RegionFavorites:
		a.renderStories("favorites", a.user.Favorites, render.ContextAll)
	case RegionOwnStories:
		a.renderStories("my stories", a.user.OwnStories, render.ContextFilter)
	default:
		if a.feed == nil {
			printlnFn(a.out, "No stories loaded yet, try 'all'.")
			return
		}
		a.renderStories("stories", a.feed.Stories, render.ContextAll)
	}
}

func (a *App) renderStories(title string, stories []models.Story, c render.Context) {
	printlnFn(a.out, fmt.Sprintf("── %s ──", title))
	if len(stories) == 0 {
		printlnFn(a.out, "(nothing here)")
		return
	}
	for _, s := range stories {
		printlnFn(a.out, render.Story(s, a.user, c))
	}
}

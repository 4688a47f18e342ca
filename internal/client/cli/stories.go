package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hackline/internal/client/api"
	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/client/services"
)

// ShowAll refetches the feed and shows the all-stories region.
func (a *App) ShowAll(ctx context.Context) error {
	a.refreshFeed(ctx)
	a.showRegion(RegionStories)
	return nil
}

// ShowFavorites shows the viewer's favorites.
func (a *App) ShowFavorites(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.showRegion(RegionFavorites)
	return nil
}

// ShowOwnStories shows the viewer's own submissions with the delete
// affordance.
func (a *App) ShowOwnStories(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.showRegion(RegionOwnStories)
	return nil
}

// Submit prompts for the story fields and submits them. The server-assigned
// story is prepended to the feed without a refetch, and the all-stories
// region is shown.
func (a *App) Submit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	author, err := getSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Enter URL", a.out)
	if err != nil {
		return err
	}

	created, err := a.stories.Add(ctx, a.user, a.feedOrEmpty(), models.NewStory{
		Author: author,
		Title:  title,
		URL:    url,
	})
	if err != nil {
		if errors.Is(err, api.ErrValidation) {
			printlnFn(a.out, "All of author, title and URL are required.")
			return err
		}
		a.reportStoryError(ctx, err)
		return err
	}

	printlnFn(a.out, "Story submitted: "+created.Title)
	a.showRegion(RegionStories)
	return nil
}

// Favorite marks the story with the given id as a favorite.
func (a *App) Favorite(ctx context.Context, storyID string) error {
	if !a.requireLogin() {
		return nil
	}

	story, ok := a.findStory(storyID)
	if !ok {
		printlnFn(a.out, "No story with id "+storyID+" in the feed.")
		return nil
	}

	if err := a.sessions.AddFavorite(ctx, a.user, story); err != nil {
		a.reportToggleError(ctx, err)
		return err
	}
	a.renderRegion()
	return nil
}

// Unfavorite removes the story from the favorites. Unfavoriting a story
// that is not favorited is a no-op.
func (a *App) Unfavorite(ctx context.Context, storyID string) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.sessions.RemoveFavorite(ctx, a.user, storyID); err != nil {
		a.reportToggleError(ctx, err)
		return err
	}
	a.renderRegion()
	return nil
}

// Delete deletes an owned story. On success the story is gone from the
// feed, the favorites and the own-stories lists before anything is redrawn.
func (a *App) Delete(ctx context.Context, storyID string) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.stories.Delete(ctx, a.user, a.feedOrEmpty(), storyID); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn(a.out, "You can only delete your own stories.")
		case errors.Is(err, api.ErrNotFound):
			printlnFn(a.out, "No such story.")
		default:
			a.reportStoryError(ctx, err)
		}
		return err
	}

	printlnFn(a.out, "Story deleted.")
	a.renderRegion()
	return nil
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn(a.out, "Log in first.")
	return false
}

// feedOrEmpty keeps the services working before the first successful fetch.
func (a *App) feedOrEmpty() *models.StoryList {
	if a.feed == nil {
		a.feed = &models.StoryList{}
	}
	return a.feed
}

func (a *App) reportStoryError(ctx context.Context, err error) {
	if errors.Is(err, api.ErrUnavailable) {
		printlnFn(a.out, "Server unreachable, please try again.")
		return
	}
	a.log.Error(ctx, "story call failed", "error", err)
	printlnFn(a.out, "Something went wrong, please try again.")
}

func (a *App) reportToggleError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, services.ErrToggleInFlight):
		printlnFn(a.out, "Still working on the previous toggle for that story.")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn(a.out, "Server unreachable, please try again.")
	default:
		a.log.Error(ctx, "favorite toggle failed", "error", err)
		printlnFn(a.out, "Something went wrong, please try again.")
	}
}

// Package api is the client for the remote link-sharing service. It covers
// exactly the calls the UI consumes; everything else about the server is its
// own business.
package api

import (
	"context"

	"github.com/dmitrijs2005/hackline/internal/client/models"
)

// Client defines the remote calls the UI needs.
//
// Contract:
//   - Login/Signup: authenticate or create an account; the returned User has
//     its Token set.
//   - User: fetch the full user record by token, used for session restore.
//   - Stories: fetch the whole feed, ordered as the server returns it.
//   - AddStory: submit a story; the result carries the server-assigned id.
//   - DeleteStory: delete an owned story (ownership checked server-side).
//   - AddFavorite/RemoveFavorite: toggle a favorite marking.
//   - Ping: liveness probe.
//
// All methods honor context cancellation. Failures are reported through the
// sentinel errors in this package, matched with errors.Is.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	User(ctx context.Context, token, username string) (*models.User, error)
	Stories(ctx context.Context) ([]models.Story, error)
	AddStory(ctx context.Context, token string, story models.NewStory) (*models.Story, error)
	DeleteStory(ctx context.Context, token, storyID string) error
	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
	Ping(ctx context.Context) error
}

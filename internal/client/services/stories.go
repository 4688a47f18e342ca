package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hackline/internal/client/api"
	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/logging"
)

// StoryService manages the cached story feed.
//
// Contract:
//   - FetchAll: full replace, never an incremental update.
//   - Add: submit a story; on success the server-assigned story is prepended
//     to the feed and to the user's own list, no refetch.
//   - Delete: delete an owned story; on success it is removed from the feed
//     and from the user's favorites and own-story lists, so no view can keep
//     showing it.
type StoryService interface {
	FetchAll(ctx context.Context) (*models.StoryList, error)
	Add(ctx context.Context, user *models.User, list *models.StoryList, story models.NewStory) (*models.Story, error)
	Delete(ctx context.Context, user *models.User, list *models.StoryList, storyID string) error
}

type storyService struct {
	client api.Client
	log    logging.Logger
}

// NewStoryService constructs a StoryService bound to the given API client.
func NewStoryService(client api.Client, log logging.Logger) StoryService {
	return &storyService{client: client, log: log.With("component", "stories")}
}

func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stories: %w", err)
	}
	return &models.StoryList{Stories: stories}, nil
}

func (s *storyService) Add(ctx context.Context, user *models.User, list *models.StoryList, story models.NewStory) (*models.Story, error) {
	if err := validateNewStory(story); err != nil {
		return nil, err
	}

	created, err := s.client.AddStory(ctx, user.Token, story)
	if err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}

	list.Prepend(*created)
	user.OwnStories = append([]models.Story{*created}, user.OwnStories...)
	s.log.Info(ctx, "story submitted", "storyId", created.StoryID)
	return created, nil
}

func (s *storyService) Delete(ctx context.Context, user *models.User, list *models.StoryList, storyID string) error {
	if err := s.client.DeleteStory(ctx, user.Token, storyID); err != nil {
		return fmt.Errorf("delete story: %w", err)
	}

	list.Remove(storyID)
	user.RemoveStory(storyID)
	s.log.Info(ctx, "story deleted", "storyId", storyID)
	return nil
}

// validateNewStory rejects a submission with missing fields before it
// reaches the server.
func validateNewStory(story models.NewStory) error {
	missing := func(v string) bool { return strings.TrimSpace(v) == "" }
	switch {
	case missing(story.Author):
		return fmt.Errorf("%w: author is required", api.ErrValidation)
	case missing(story.Title):
		return fmt.Errorf("%w: title is required", api.ErrValidation)
	case missing(story.URL):
		return fmt.Errorf("%w: url is required", api.ErrValidation)
	}
	return nil
}

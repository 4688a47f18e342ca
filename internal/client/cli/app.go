package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/hackline/internal/client/api"
	"github.com/dmitrijs2005/hackline/internal/client/config"
	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/client/repositories/session"
	"github.com/dmitrijs2005/hackline/internal/client/services"
	"github.com/dmitrijs2005/hackline/internal/client/storage"
	"github.com/dmitrijs2005/hackline/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known server reachability, shown in the prompt.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App is the UI controller. It owns the process-wide mutable state (the
// current user and the cached feed) and re-renders the active view region
// after every mutation.
type App struct {
	config   *config.Config
	log      logging.Logger
	client   api.Client
	sessions services.SessionService
	stories  services.StoryService

	user         *models.User
	feed         *models.StoryList
	activeRegion Region

	Mode   Mode
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the session database, the API client and the services.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := storage.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewRestClient(c.ServerAddr, c.RequestTimeout, log)
	store := session.NewSQLiteRepository(db)

	return &App{
		config:   c,
		log:      log,
		client:   apiClient,
		sessions: services.NewSessionService(apiClient, store, log),
		stories:  services.NewStoryService(apiClient, log),
		Mode:     ModeOnline,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores the session, renders the feed and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.startup(ctx)

	go a.startHealthWatcher(ctx, a.config.HealthCheckInterval)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
}

// startup mirrors the page-load sequence: restore the session from the
// store, fetch the feed, render the all-stories region. A failed restore is
// reported but never blocks the logged-out view.
func (a *App) startup(ctx context.Context) {
	u, err := a.sessions.Restore(ctx)
	if err != nil {
		printlnFn(a.out, "Server unreachable, continuing logged out.")
		a.setMode(ModeOffline)
	}
	a.user = u

	a.refreshFeed(ctx)
	a.showRegion(RegionStories)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// refreshFeed replaces the cached feed wholesale. On failure the previous
// feed (possibly none) is kept and the user is told the feed is stale.
func (a *App) refreshFeed(ctx context.Context) {
	list, err := a.stories.FetchAll(ctx)
	if err != nil {
		a.log.Error(ctx, "feed fetch failed", "error", err)
		printlnFn(a.out, "Could not load stories, please retry with 'all'.")
		return
	}
	a.feed = list
}

func (a *App) findStory(storyID string) (models.Story, bool) {
	if a.feed == nil {
		return models.Story{}, false
	}
	for _, s := range a.feed.Stories {
		if s.StoryID == storyID {
			return s, true
		}
	}
	return models.Story{}, false
}

func (a *App) status() string {
	s := ""
	if a.user != nil {
		s = a.user.Username + " "
	}
	s += string(a.Mode)
	return "(" + s + ")"
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// startHealthWatcher probes the server on the given interval and flips the
// online/offline indicator. It changes nothing functionally; it only
// explains failing calls to the user.
func (a *App) startHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

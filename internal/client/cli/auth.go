package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hackline/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Bad credentials are
// reported inline and are not fatal; on success the session is persisted and
// the all-stories region is shown with the viewer's favorites reflected.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	u, err := a.sessions.Login(ctx, username, string(password))
	if err != nil {
		a.reportAuthError(ctx, err, "Invalid username or password.")
		return err
	}

	a.user = u
	printlnFn(a.out, "Welcome back, "+u.Name+"!")
	a.showRegion(RegionStories)
	return nil
}

// Signup prompts for the account fields and creates the account in a single
// call; a taken username comes back as a typed error from the server, no
// probing involved.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	u, err := a.sessions.Signup(ctx, username, string(password), name)
	if err != nil {
		if errors.Is(err, api.ErrAlreadyExists) {
			printlnFn(a.out, "That username is already taken.")
			return err
		}
		a.reportAuthError(ctx, err, "Signup failed.")
		return err
	}

	a.user = u
	printlnFn(a.out, "Account created. Welcome, "+u.Name+"!")
	a.showRegion(RegionStories)
	return nil
}

// Logout clears the persisted session and all in-memory user state, then
// re-renders the logged-out feed.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Warn(ctx, "session not cleared", "error", err)
	}
	a.user = nil

	a.refreshFeed(ctx)
	a.showRegion(RegionStories)
	return nil
}

func (a *App) reportAuthError(ctx context.Context, err error, badCredentials string) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn(a.out, badCredentials)
	case errors.Is(err, api.ErrUnavailable):
		printlnFn(a.out, "Server unreachable, please try again.")
	default:
		a.log.Error(ctx, "auth call failed", "error", err)
		printlnFn(a.out, "Something went wrong, please try again.")
	}
}

package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/hackline/internal/client/api"
	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/client/repositories/session"
)

func TestLogin_Success(t *testing.T) {
	apiClient := &fakeAPI{
		loginUser: &models.User{Username: "alice", Name: "Alice", Token: "tok"},
		stories:   []models.Story{{StoryID: "1", Title: "T", URL: "https://e.com", Username: "bob"}},
	}
	store := &fakeStore{}
	a, buf := newTestApp(t, apiClient, store)
	a.feed = &models.StoryList{Stories: apiClient.stories}

	stubInputs(t, []string{"alice"}, []byte("secret"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if a.user == nil || a.user.Username != "alice" {
		t.Fatalf("user not set: %+v", a.user)
	}
	if store.rec == nil || store.rec.Token != "tok" || store.rec.Username != "alice" {
		t.Fatalf("session not persisted: %+v", store.rec)
	}
	if !strings.Contains(buf.String(), "Welcome back, Alice!") {
		t.Fatalf("greeting missing: %q", buf.String())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	apiClient := &fakeAPI{loginErr: api.ErrUnauthorized}
	a, buf := newTestApp(t, apiClient, &fakeStore{})

	stubInputs(t, []string{"alice"}, []byte("wrong"))

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error for bad credentials")
	}
	if a.user != nil {
		t.Fatalf("failed login must not set a user")
	}
	if !strings.Contains(buf.String(), "Invalid username or password.") {
		t.Fatalf("inline error missing: %q", buf.String())
	}
}

func TestLogin_ServerUnreachable(t *testing.T) {
	apiClient := &fakeAPI{loginErr: api.ErrUnavailable}
	a, buf := newTestApp(t, apiClient, &fakeStore{})

	stubInputs(t, []string{"alice"}, []byte("pw"))

	_ = a.Login(context.Background())
	if !strings.Contains(buf.String(), "Server unreachable") {
		t.Fatalf("retryable message missing: %q", buf.String())
	}
}

func TestSignup_Success(t *testing.T) {
	apiClient := &fakeAPI{
		signupUser: &models.User{Username: "alice", Name: "Alice", Token: "tok"},
	}
	store := &fakeStore{}
	a, buf := newTestApp(t, apiClient, store)
	a.feed = &models.StoryList{}

	stubInputs(t, []string{"Alice", "alice"}, []byte("secret"))

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if a.user == nil || a.user.Username != "alice" {
		t.Fatalf("user not set after signup")
	}
	if store.rec == nil {
		t.Fatalf("session not persisted after signup")
	}
	if !strings.Contains(buf.String(), "Account created.") {
		t.Fatalf("confirmation missing: %q", buf.String())
	}
}

func TestSignup_UsernameTaken(t *testing.T) {
	apiClient := &fakeAPI{signupErr: api.ErrAlreadyExists}
	a, buf := newTestApp(t, apiClient, &fakeStore{})

	stubInputs(t, []string{"Alice", "alice"}, []byte("pw"))

	if err := a.Signup(context.Background()); err == nil {
		t.Fatalf("want error for taken username")
	}
	if !strings.Contains(buf.String(), "already taken") {
		t.Fatalf("taken-username message missing: %q", buf.String())
	}
}

func TestLogout_ClearsSessionAndState(t *testing.T) {
	apiClient := &fakeAPI{stories: []models.Story{{StoryID: "1", Title: "T", URL: "https://e.com"}}}
	store := &fakeStore{rec: &session.Record{Token: "tok", Username: "alice"}}
	a, _ := newTestApp(t, apiClient, store)
	a.user = &models.User{Username: "alice", Token: "tok"}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if a.user != nil {
		t.Fatalf("user not discarded on logout")
	}
	if !store.cleared {
		t.Fatalf("session store not cleared")
	}
}

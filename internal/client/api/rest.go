package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/hackline/internal/client/models"
	"github.com/dmitrijs2005/hackline/internal/logging"
)

// RestClient is the concrete Client speaking JSON over HTTP.
type RestClient struct {
	http *resty.Client
	log  logging.Logger
}

// NewRestClient builds a RestClient against the given base URL. Every
// request gets a generated X-Request-Id header, which is also attached to
// the request log line so client and server logs can be correlated.
func NewRestClient(baseURL string, timeout time.Duration, log logging.Logger) *RestClient {
	log = log.With("component", "api")

	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		id := uuid.NewString()
		r.SetHeader("X-Request-Id", id)
		log.Debug(r.Context(), "request", "method", r.Method, "url", r.URL, "requestId", id)
		return nil
	})

	return &RestClient{http: c, log: log}
}

// Wire DTOs. The server wraps records in a named field; the client's models
// are the unwrapped records.
type (
	credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	signupRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	authResponse struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}

	userResponse struct {
		User models.User `json:"user"`
	}

	storiesResponse struct {
		Stories []models.Story `json:"stories"`
	}

	storyResponse struct {
		Story models.Story `json:"story"`
	}
)

func (c *RestClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	var out authResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(credentials{Username: username, Password: password}).
		SetResult(&out).
		Post("/login")
	if err := checkResponse(res, err); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	u := out.User
	u.Token = out.Token
	return &u, nil
}

func (c *RestClient) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	var out authResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(signupRequest{Username: username, Password: password, Name: name}).
		SetResult(&out).
		Post("/signup")
	if err := checkResponse(res, err); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	u := out.User
	u.Token = out.Token
	return &u, nil
}

func (c *RestClient) User(ctx context.Context, token, username string) (*models.User, error) {
	var out userResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/users/" + username)
	if err := checkResponse(res, err); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u := out.User
	u.Token = token
	return &u, nil
}

func (c *RestClient) Stories(ctx context.Context) ([]models.Story, error) {
	var out storiesResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/stories")
	if err := checkResponse(res, err); err != nil {
		return nil, fmt.Errorf("get stories: %w", err)
	}
	return out.Stories, nil
}

func (c *RestClient) AddStory(ctx context.Context, token string, story models.NewStory) (*models.Story, error) {
	var out storyResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(story).
		SetResult(&out).
		Post("/stories")
	if err := checkResponse(res, err); err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}
	return &out.Story, nil
}

func (c *RestClient) DeleteStory(ctx context.Context, token, storyID string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/stories/" + storyID)
	if err := checkResponse(res, err); err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	return nil
}

func (c *RestClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post("/users/" + username + "/favorites/" + storyID)
	if err := checkResponse(res, err); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (c *RestClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/users/" + username + "/favorites/" + storyID)
	if err := checkResponse(res, err); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

func (c *RestClient) Ping(ctx context.Context) error {
	res, err := c.http.R().
		SetContext(ctx).
		Get("/health")
	if err := checkResponse(res, err); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// checkResponse folds a resty result into the package error taxonomy.
// Transport failures become ErrUnavailable; HTTP error statuses map onto the
// sentinel errors.
func checkResponse(res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.IsSuccess() {
		return nil
	}

	switch res.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return fmt.Errorf("unexpected status %d", res.StatusCode())
	}
}

package tripdex

import (
	"context"
	"net/http"
	"time"
)

type authEnvelope struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   struct {
		User User `json:"user"`
	} `json:"data"`
}

// Login exchanges credentials for a session token. Pass the token to
// WithToken to make authenticated calls.
func (c *Client) Login(ctx context.Context, email, password string) (s Session, err error) {
	start := time.Now()
	defer func() { c.obs.observe("login", start, err) }()

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var env authEnvelope
	if _, err = c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &env); err != nil {
		return Session{}, err
	}
	return Session{Token: env.Token, User: env.Data.User}, nil
}

// Me returns the account behind the client's token.
func (c *Client) Me(ctx context.Context) (u User, err error) {
	start := time.Now()
	defer func() { c.obs.observe("me", start, err) }()

	var env authEnvelope
	if _, err = c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &env); err != nil {
		return User{}, err
	}
	return env.Data.User, nil
}

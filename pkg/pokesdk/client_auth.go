package pokesdk

import (
	"context"
	"net/http"
)

// SignUp registers a new account. It does not sign in.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	var out SignUpResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/signup", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn exchanges credentials for a session cookie, which the client keeps.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	var out SignInResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/signin", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut expires the session cookie.
func (c *Client) SignOut(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/api/auth/signout", nil, nil, http.StatusOK)
}

// Session describes the current session. It never fails for anonymous callers.
func (c *Client) Session(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.call(ctx, http.MethodGet, "/api/auth/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me calls the gated identity endpoint.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := c.call(ctx, http.MethodGet, "/api/protected/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

package pokesdk

import (
	"context"
	"net/http"
)

func (c *Client) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	var out SettingsResponse
	if err := c.call(ctx, http.MethodGet, "/api/settings", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces the caller's account settings.
func (c *Client) UpdateSettings(ctx context.Context, req SettingsRequest) (*SettingsResponse, error) {
	var out SettingsResponse
	if err := c.call(ctx, http.MethodPut, "/api/settings", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

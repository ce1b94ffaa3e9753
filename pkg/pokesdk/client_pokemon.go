package pokesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListPokemon fetches one page of the catalogue.
func (c *Client) ListPokemon(ctx context.Context, params ListPokemonParams) (*PokemonList, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Generation > 0 {
		q.Set("generation", strconv.Itoa(params.Generation))
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.IsCollected != nil {
		q.Set("isCollected", strconv.FormatBool(*params.IsCollected))
	}

	path := "/api/pokemon"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out PokemonList
	if err := c.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePokemon adds an entry. Requires a session.
func (c *Client) CreatePokemon(ctx context.Context, req CreatePokemonRequest) (*Pokemon, error) {
	var out PokemonResponse
	if err := c.call(ctx, http.MethodPost, "/api/pokemon", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Pokemon, nil
}

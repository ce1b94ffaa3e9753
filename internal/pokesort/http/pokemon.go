package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

type PokemonHandler struct {
	Pokemon *service.PokemonService
}

func toPokemon(p domain.Pokemon) pokesdk.Pokemon {
	types := p.Types
	if types == nil {
		types = []string{}
	}
	return pokesdk.Pokemon{
		ID:          p.ID,
		Number:      p.Number,
		Name:        p.Name,
		Types:       types,
		Rarity:      p.Rarity,
		Variant:     p.Variant,
		IsCollected: p.IsCollected,
		ImageURL:    p.ImageURL,
		Generation:  p.Generation,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// parseListQuery reads the listing filters, reporting every malformed one.
func parseListQuery(q url.Values) (service.ListPokemonQuery, []pokesdk.FieldError) {
	var (
		out  service.ListPokemonQuery
		errs []pokesdk.FieldError
	)

	ints := []struct {
		name string
		dst  *int
	}{
		{"page", &out.Page},
		{"limit", &out.Limit},
		{"generation", &out.Generation},
	}
	for _, p := range ints {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, pokesdk.FieldError{Field: p.name, Message: "Expected a number"})
			continue
		}
		*p.dst = n
	}

	switch raw := q.Get("isCollected"); raw {
	case "":
	case "true", "false":
		b := raw == "true"
		out.IsCollected = &b
	default:
		errs = append(errs, pokesdk.FieldError{Field: "isCollected", Message: "Expected true or false"})
	}

	out.Type = q.Get("type")
	return out, errs
}

// HandleList godoc
//
//	@Summary		List Pokémon
//	@Description	Page through the catalogue sorted by number. Limit is clamped to 1..100.
//	@Tags			Pokemon
//	@Produce		json
//	@Param			page		query		int		false	"Page number, default 1"
//	@Param			limit		query		int		false	"Page size, default 20"
//	@Param			generation	query		int		false	"Generation filter"
//	@Param			type		query		string	false	"Type filter"
//	@Param			isCollected	query		bool	false	"Collected filter"
//	@Success		200			{object}	pokesdk.PokemonList	"pokemon, pagination"
//	@Failure		400			{object}	pokesdk.APIError	"VALIDATION_ERROR"
//	@Failure		500			{object}	pokesdk.APIError	"SERVER_ERROR"
//	@Router			/api/pokemon [get].
func (h *PokemonHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, errs := parseListQuery(r.URL.Query())
	if len(errs) > 0 {
		pokesdk.NewValidationError(errs).WriteError(w)
		return
	}

	page, err := h.Pokemon.List(ctx, query)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list pokemon", "error", err)
		pokesdk.ErrUnexpected.WriteError(w)
		return
	}

	items := make([]pokesdk.Pokemon, 0, len(page.Pokemon))
	for _, p := range page.Pokemon {
		items = append(items, toPokemon(p))
	}
	httpx.WriteJSON(w, http.StatusOK, pokesdk.PokemonList{
		Pokemon: items,
		Pagination: pokesdk.Pagination{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// HandleCreate godoc
//
//	@Summary		Create Pokémon
//	@Description	Add a catalogue entry. Numbers are unique.
//	@Tags			Pokemon
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		pokesdk.CreatePokemonRequest	true	"Entry"
//	@Success		201		{object}	pokesdk.PokemonResponse			"pokemon"
//	@Failure		400		{object}	pokesdk.APIError				"VALIDATION_ERROR"
//	@Failure		401		{object}	pokesdk.APIError				"UNAUTHORIZED"
//	@Failure		409		{object}	pokesdk.APIError				"DUPLICATE_ERROR"
//	@Failure		500		{object}	pokesdk.APIError				"SERVER_ERROR"
//	@Router			/api/pokemon [post].
func (h *PokemonHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := httpx.UserIDFromContext(ctx); !ok {
		pokesdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req pokesdk.CreatePokemonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pokesdk.ErrInvalidBody.WriteError(w)
		return
	}

	p, err := h.Pokemon.Create(ctx, service.CreatePokemonInput{
		Number:      req.Number,
		Name:        req.Name,
		Types:       req.Types,
		Rarity:      req.Rarity,
		Variant:     req.Variant,
		IsCollected: req.IsCollected,
		ImageURL:    req.ImageURL,
		Generation:  req.Generation,
	})
	if err != nil {
		if apiErr, ok := inputError(err); ok {
			apiErr.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to create pokemon", "error", err)
		pokesdk.ErrUnexpected.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pokesdk.PokemonResponse{Pokemon: toPokemon(p)})
}

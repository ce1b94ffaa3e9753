package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/aussiebroadwan/pokesort/pkg/idx"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type CreatePokemonInput struct {
	Number      string   `json:"number" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Types       []string `json:"types" validate:"min=1,dive,required"`
	Rarity      string   `json:"rarity" validate:"required,oneof=Common Uncommon Rare 'Ultra Rare'"`
	Variant     string   `json:"variant"`
	IsCollected bool     `json:"isCollected"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
	Generation  int      `json:"generation" validate:"gte=1"`
}

// ListPokemonQuery selects a page of the catalogue. Out-of-range page and
// limit values are clamped rather than rejected.
type ListPokemonQuery struct {
	Page        int
	Limit       int
	Generation  int
	Type        string
	IsCollected *bool
}

type PokemonPage struct {
	Pokemon    []domain.Pokemon
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

type PokemonService struct {
	Store     store.Store
	Validator *Validator
	Now       func() time.Time
}

func NewPokemonService(s store.Store, v *Validator) *PokemonService {
	return &PokemonService{Store: s, Validator: v, Now: time.Now}
}

func clampPage(page, limit int) domain.Page {
	if page < 1 {
		page = 1
	}
	switch {
	case limit == 0:
		limit = DefaultPageLimit
	case limit < 1:
		limit = 1
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	// Keep the row offset within what every driver binds as an integer.
	if maxPage := math.MaxInt32/limit + 1; page > maxPage {
		page = maxPage
	}
	return domain.Page{Page: page, Limit: limit}
}

// List returns one page sorted by number.
func (s *PokemonService) List(ctx context.Context, q ListPokemonQuery) (PokemonPage, error) {
	page := clampPage(q.Page, q.Limit)
	filter := domain.PokemonFilter{
		Generation:  q.Generation,
		Type:        strings.TrimSpace(q.Type),
		IsCollected: q.IsCollected,
	}

	items, total, err := s.Store.Pokemon().ListPokemon(ctx, filter, page)
	if err != nil {
		return PokemonPage{}, fmt.Errorf("list pokemon: %w", err)
	}

	return PokemonPage{
		Pokemon:    items,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: (total + page.Limit - 1) / page.Limit,
	}, nil
}

// Create adds a catalogue entry. A taken number is a *DuplicateError.
func (s *PokemonService) Create(ctx context.Context, in CreatePokemonInput) (domain.Pokemon, error) {
	in.Number = strings.TrimSpace(in.Number)
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(s.Validator, in); err != nil {
		return domain.Pokemon{}, err
	}

	now := s.Now().UTC()
	p := domain.Pokemon{
		ID:          idx.NewAt(now).String(),
		Number:      in.Number,
		Name:        in.Name,
		Types:       in.Types,
		Rarity:      in.Rarity,
		Variant:     in.Variant,
		IsCollected: in.IsCollected,
		ImageURL:    in.ImageURL,
		Generation:  in.Generation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Pokemon().CreatePokemon(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Pokemon{}, &DuplicateError{Field: "number", Message: "A Pokemon with this number already exists"}
		}
		return domain.Pokemon{}, fmt.Errorf("create pokemon: %w", err)
	}

	slogx.FromContext(ctx).Info("pokemon created", "number", p.Number, "name", p.Name)
	return p, nil
}

package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/dbx"
)

const pokemonColumns = `id, number, name, types, rarity, variant,
	is_collected, image_url, generation, created_at, updated_at`

type pokemonRepo struct {
	db dbx.DBTX
}

func scanPokemon(row dbx.Scanner) (domain.Pokemon, error) {
	var (
		p     domain.Pokemon
		types string
	)
	if err := row.Scan(
		&p.ID, &p.Number, &p.Name, &types, &p.Rarity, &p.Variant,
		&p.IsCollected, &p.ImageURL, &p.Generation, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Pokemon{}, err
	}
	if err := json.Unmarshal([]byte(types), &p.Types); err != nil {
		return domain.Pokemon{}, fmt.Errorf("decode types of %s: %w", p.Number, err)
	}
	return p, nil
}

// whereClause builds the shared filter for the list and count queries.
func whereClause(f domain.PokemonFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Generation > 0 {
		conds = append(conds, "generation = ?")
		args = append(args, f.Generation)
	}
	if f.Type != "" {
		conds = append(conds, "EXISTS (SELECT 1 FROM json_each(pokemon.types) WHERE json_each.value = ?)")
		args = append(args, f.Type)
	}
	if f.IsCollected != nil {
		conds = append(conds, "is_collected = ?")
		args = append(args, *f.IsCollected)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *pokemonRepo) ListPokemon(ctx context.Context, f domain.PokemonFilter, p domain.Page) ([]domain.Pokemon, int, error) {
	where, args := whereClause(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pokemon: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+pokemonColumns+` FROM pokemon`+where+` ORDER BY number ASC LIMIT ? OFFSET ?`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pokemon: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Pokemon, 0, p.Limit)
	for rows.Next() {
		pk, err := scanPokemon(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, pk)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list pokemon: %w", err)
	}
	return out, total, nil
}

func (r *pokemonRepo) CreatePokemon(ctx context.Context, p domain.Pokemon) error {
	types, err := json.Marshal(p.Types)
	if err != nil {
		return fmt.Errorf("encode types: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO pokemon (`+pokemonColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Number, p.Name, string(types), p.Rarity, p.Variant,
		p.IsCollected, p.ImageURL, p.Generation, p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create pokemon: %w", mapConflict(err))
	}
	return nil
}

func (r *pokemonRepo) GetPokemonByNumber(ctx context.Context, number string) (domain.Pokemon, error) {
	p, err := scanPokemon(r.db.QueryRowContext(ctx,
		`SELECT `+pokemonColumns+` FROM pokemon WHERE number = ?`, number))
	if err != nil {
		return domain.Pokemon{}, mapNotFound(err)
	}
	return p, nil
}

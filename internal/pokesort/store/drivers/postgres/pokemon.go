package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
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
		types []byte
	)
	if err := row.Scan(
		&p.ID, &p.Number, &p.Name, &types, &p.Rarity, &p.Variant,
		&p.IsCollected, &p.ImageURL, &p.Generation, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Pokemon{}, err
	}
	if err := json.Unmarshal(types, &p.Types); err != nil {
		return domain.Pokemon{}, fmt.Errorf("decode types of %s: %w", p.Number, err)
	}
	return p, nil
}

// whereClause builds the shared filter and returns the args bound so far;
// further placeholders continue from len(args)+1.
func whereClause(f domain.PokemonFilter) (string, []any, error) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Generation > 0 {
		conds = append(conds, "generation = "+next(f.Generation))
	}
	if f.Type != "" {
		needle, err := json.Marshal([]string{f.Type})
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, "types @> "+next(string(needle))+"::jsonb")
	}
	if f.IsCollected != nil {
		conds = append(conds, "is_collected = "+next(*f.IsCollected))
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func (r *pokemonRepo) ListPokemon(ctx context.Context, f domain.PokemonFilter, p domain.Page) ([]domain.Pokemon, int, error) {
	where, args, err := whereClause(f)
	if err != nil {
		return nil, 0, fmt.Errorf("list pokemon: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pokemon: %w", err)
	}

	limitPos := strconv.Itoa(len(args) + 1)
	offsetPos := strconv.Itoa(len(args) + 2)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+pokemonColumns+` FROM pokemon`+where+
			` ORDER BY number ASC LIMIT $`+limitPos+` OFFSET $`+offsetPos,
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
		 VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9, $10, $11)`,
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
		`SELECT `+pokemonColumns+` FROM pokemon WHERE number = $1`, number))
	if err != nil {
		return domain.Pokemon{}, mapNotFound(err)
	}
	return p, nil
}

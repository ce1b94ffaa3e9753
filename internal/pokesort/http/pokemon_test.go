package http_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/stretchr/testify/require"
)

func TestPokemon_CreateAndList(t *testing.T) {
	env := newTestEnv(t).start(t)
	ctx := context.Background()
	client := signedInClient(t, env, "ash01", "ash@example.com")

	for _, p := range []pokesdk.CreatePokemonRequest{
		{Number: "025", Name: "Pikachu", Types: []string{"Electric"}, Rarity: "Common", Generation: 1, IsCollected: true},
		{Number: "006", Name: "Charizard", Types: []string{"Fire", "Flying"}, Rarity: "Ultra Rare", Generation: 1},
		{Number: "155", Name: "Cyndaquil", Types: []string{"Fire"}, Rarity: "Uncommon", Generation: 2},
	} {
		created, err := client.CreatePokemon(ctx, p)
		require.NoError(t, err)
		require.Equal(t, p.Number, created.Number)
	}

	list, err := client.ListPokemon(ctx, pokesdk.ListPokemonParams{})
	require.NoError(t, err)
	require.Len(t, list.Pokemon, 3)
	require.Equal(t, "006", list.Pokemon[0].Number)
	require.Equal(t, pokesdk.Pagination{Total: 3, Page: 1, Limit: 20, TotalPages: 1}, list.Pagination)

	list, err = client.ListPokemon(ctx, pokesdk.ListPokemonParams{Type: "Fire", Limit: 1, Page: 2})
	require.NoError(t, err)
	require.Len(t, list.Pokemon, 1)
	require.Equal(t, "155", list.Pokemon[0].Number)
	require.Equal(t, 2, list.Pagination.TotalPages)

	list, err = client.ListPokemon(ctx, pokesdk.ListPokemonParams{IsCollected: pokesdk.Bool(true)})
	require.NoError(t, err)
	require.Len(t, list.Pokemon, 1)
	require.Equal(t, "Pikachu", list.Pokemon[0].Name)

	t.Run("duplicate number", func(t *testing.T) {
		_, err := client.CreatePokemon(ctx, pokesdk.CreatePokemonRequest{
			Number: "025", Name: "Raichu", Types: []string{"Electric"}, Rarity: "Rare", Generation: 1,
		})
		apiErr := requireAPIError(t, err, http.StatusConflict, pokesdk.CodeDuplicate)
		require.Equal(t, "number", apiErr.Field)
		require.Equal(t, "A Pokemon with this number already exists", apiErr.Message)
	})

	t.Run("invalid entry", func(t *testing.T) {
		_, err := client.CreatePokemon(ctx, pokesdk.CreatePokemonRequest{Number: "151", Name: "Mew", Rarity: "Mythic"})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, pokesdk.CodeValidation)
		for _, field := range []string{"types", "rarity", "generation"} {
			_, ok := apiErr.FieldMessage(field)
			require.True(t, ok, "missing %s", field)
		}
	})

	t.Run("anonymous create", func(t *testing.T) {
		_, err := env.client(t).CreatePokemon(ctx, pokesdk.CreatePokemonRequest{
			Number: "151", Name: "Mew", Types: []string{"Psychic"}, Rarity: "Rare", Generation: 1,
		})
		requireAPIError(t, err, http.StatusUnauthorized, pokesdk.CodeUnauthorized)
	})
}

func TestPokemon_ListRejectsMalformedQuery(t *testing.T) {
	env := newTestEnv(t).start(t)

	tests := []struct {
		query string
		field string
	}{
		{"page=two", "page"},
		{"limit=ten", "limit"},
		{"generation=I", "generation"},
		{"isCollected=yes", "isCollected"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, err := http.Get(env.server.URL + "/api/pokemon?" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Contains(t, string(body), fmt.Sprintf(`"field":%q`, tt.field))
		})
	}
}

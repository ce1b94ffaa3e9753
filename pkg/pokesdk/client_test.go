package pokesdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/stretchr/testify/require"
)

// fakeServer mimics just enough of the API to exercise the client: a signin
// that sets a cookie and a settings endpoint that requires it.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req pokesdk.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "pikachu1" {
			pokesdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "pokesort.session-token", Value: "tok", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pokesdk.SignInResponse{User: pokesdk.Identity{ID: "u1", Username: req.Username}})
	})
	mux.HandleFunc("GET /api/settings", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("pokesort.session-token"); err != nil || c.Value != "tok" {
			pokesdk.ErrUnauthorized.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode(pokesdk.SettingsResponse{User: pokesdk.Settings{ID: "u1", Username: "ash01"}})
	})
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		pokesdk.NewValidationError([]pokesdk.FieldError{
			{Field: "confirmPassword", Message: "Passwords don't match"},
		}).WriteError(w)
	})
	mux.HandleFunc("GET /api/pokemon", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "Fire", r.URL.Query().Get("type"))
		require.Equal(t, "false", r.URL.Query().Get("isCollected"))
		require.Empty(t, r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(pokesdk.PokemonList{
			Pokemon:    []pokesdk.Pokemon{{Number: "004", Name: "Charmander"}},
			Pagination: pokesdk.Pagination{Total: 21, Page: 2, Limit: 20, TotalPages: 2},
		})
	})
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("not json"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_SessionCookieIsKept(t *testing.T) {
	ctx := context.Background()
	client, err := pokesdk.NewClient(fakeServer(t).URL + "/")
	require.NoError(t, err)

	_, err = client.GetSettings(ctx)
	require.ErrorIs(t, err, pokesdk.ErrUnauthorized)

	resp, err := client.SignIn(ctx, pokesdk.SignInRequest{Username: "ash01", Password: "pikachu1"})
	require.NoError(t, err)
	require.Equal(t, "ash01", resp.User.Username)

	settings, err := client.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "u1", settings.User.ID)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()
	client, err := pokesdk.NewClient(fakeServer(t).URL)
	require.NoError(t, err)

	t.Run("generic credentials failure", func(t *testing.T) {
		_, err := client.SignIn(ctx, pokesdk.SignInRequest{Username: "ash01", Password: "wrong-one"})

		var apiErr *pokesdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, pokesdk.CodeInvalidCredentials, apiErr.Code)
		require.Equal(t, "Invalid username or password", apiErr.Message)
	})

	t.Run("validation details", func(t *testing.T) {
		_, err := client.SignUp(ctx, pokesdk.SignUpRequest{})

		var apiErr *pokesdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, pokesdk.CodeValidation, apiErr.Code)
		msg, ok := apiErr.FieldMessage("confirmPassword")
		require.True(t, ok)
		require.Equal(t, "Passwords don't match", msg)
	})

	t.Run("foreign body falls back to status text", func(t *testing.T) {
		_, err := client.GetLiveness(ctx)

		var apiErr *pokesdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusTeapot, apiErr.StatusCode)
		require.Equal(t, pokesdk.CodeServerError, apiErr.Code)
	})
}

func TestClient_ListPokemonQuery(t *testing.T) {
	client, err := pokesdk.NewClient(fakeServer(t).URL)
	require.NoError(t, err)

	list, err := client.ListPokemon(context.Background(), pokesdk.ListPokemonParams{
		Page:        2,
		Type:        "Fire",
		IsCollected: pokesdk.Bool(false),
	})
	require.NoError(t, err)
	require.Len(t, list.Pokemon, 1)
	require.Equal(t, 2, list.Pagination.TotalPages)
}

func TestAPIError_WriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	pokesdk.NewDuplicateError("email", "This email is already registered").WriteError(rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"DUPLICATE_ERROR","message":"This email is already registered","field":"email"}`, rec.Body.String())
}

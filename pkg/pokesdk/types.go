package pokesdk

import "time"

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary is the minimal user projection returned by sign-up.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignUpResponse is returned with 201 Created.
type SignUpResponse struct {
	User UserSummary `json:"user"`
}

// Identity is the user projection returned by sign-in.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Image    string `json:"image,omitempty"`
}

// SignInResponse is returned with 200 alongside the session cookie.
type SignInResponse struct {
	User Identity `json:"user"`
}

// SessionUser is the identity carried by a session token.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SessionResponse describes the caller's session. Both fields are empty for
// anonymous callers.
type SessionResponse struct {
	User    *SessionUser `json:"user,omitempty"`
	Expires *time.Time   `json:"expires,omitempty"`
}

// Authenticated reports whether the response describes a live session.
func (s SessionResponse) Authenticated() bool { return s.User != nil }

// Notifications are the per-user notification flags.
type Notifications struct {
	Email       *bool `json:"email"`
	Push        *bool `json:"push"`
	NewFeatures *bool `json:"newFeatures"`
	DeckUpdates *bool `json:"deckUpdates"`
}

// Preferences are the per-user display preferences.
type Preferences struct {
	Theme            string `json:"theme"`
	CardDisplayStyle string `json:"cardDisplayStyle"`
	EnableAnimations *bool  `json:"enableAnimations"`
	CompactMode      *bool  `json:"compactMode"`
}

// SettingsRequest is the body of PUT /api/settings. Every field is required;
// the pointers let the server tell a missing flag from false.
type SettingsRequest struct {
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Notifications Notifications `json:"notifications"`
	Preferences   Preferences   `json:"preferences"`
}

// Settings is the account projection returned by the settings endpoints.
type Settings struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Notifications Notifications `json:"notifications"`
	Preferences   Preferences   `json:"preferences"`
}

// SettingsResponse wraps Settings.
type SettingsResponse struct {
	User Settings `json:"user"`
}

// Pokemon is one catalogue entry.
type Pokemon struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Name        string    `json:"name"`
	Types       []string  `json:"types"`
	Rarity      string    `json:"rarity"`
	Variant     string    `json:"variant,omitempty"`
	IsCollected bool      `json:"isCollected"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Generation  int       `json:"generation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreatePokemonRequest is the body of POST /api/pokemon.
type CreatePokemonRequest struct {
	Number      string   `json:"number"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	Rarity      string   `json:"rarity"`
	Variant     string   `json:"variant,omitempty"`
	IsCollected bool     `json:"isCollected,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Generation  int      `json:"generation"`
}

// PokemonResponse wraps a single entry.
type PokemonResponse struct {
	Pokemon Pokemon `json:"pokemon"`
}

// ListPokemonParams are the optional filters of GET /api/pokemon. Zero
// values are omitted from the query.
type ListPokemonParams struct {
	Page        int
	Limit       int
	Generation  int
	Type        string
	IsCollected *bool
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// PokemonList is one page of the catalogue.
type PokemonList struct {
	Pokemon    []Pokemon  `json:"pokemon"`
	Pagination Pagination `json:"pagination"`
}

// MeResponse is returned by GET /api/protected/me.
type MeResponse struct {
	User SessionUser `json:"user"`
}

// HealthResponse is returned by the probes.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Bool returns a pointer to b, for building requests with optional flags.
func Bool(b bool) *bool { return &b }

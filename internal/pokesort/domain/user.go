package domain

import "time"

// Theme values accepted in Preferences.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Card display styles accepted in Preferences.
const (
	CardDisplayGrid = "grid"
	CardDisplayList = "list"
)

type Notifications struct {
	Email       bool
	Push        bool
	NewFeatures bool
	DeckUpdates bool
}

type Preferences struct {
	Theme            string
	CardDisplayStyle string
	EnableAnimations bool
	CompactMode      bool
}

type User struct {
	ID            string
	Username      string
	Email         string // trimmed, lower-cased
	PasswordHash  string // argon2id PHC string
	Name          string
	Image         string
	Notifications Notifications
	Preferences   Preferences
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultNotifications is what a new account starts with.
func DefaultNotifications() Notifications {
	return Notifications{Email: true, Push: true, NewFeatures: true, DeckUpdates: true}
}

// DefaultPreferences is what a new account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:            ThemeSystem,
		CardDisplayStyle: CardDisplayGrid,
		EnableAnimations: true,
		CompactMode:      false,
	}
}

// Identity is the public projection returned after sign-in.
type Identity struct {
	ID       string
	Username string
	Email    string
	Name     string
	Image    string
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email, Name: u.Name, Image: u.Image}
}

// SettingsUpdate is the full set of fields a user may change about themselves.
type SettingsUpdate struct {
	Username      string
	Email         string
	Notifications Notifications
	Preferences   Preferences
}

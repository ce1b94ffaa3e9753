package service

// Auth event names and the outcome used when they succeed.
const (
	EventSignUp  = "signup"
	EventSignIn  = "signin"
	EventSignOut = "signout"
	EventRefresh = "refresh"

	OutcomeOK = "ok"
)

// AuthEvents receives one call per authentication event. Outcomes other than
// OutcomeOK are error kinds such as "USER_NOT_FOUND".
type AuthEvents interface {
	AuthEvent(event, outcome string)
}

type noEvents struct{}

func (noEvents) AuthEvent(string, string) {}

func eventsOrNoop(e AuthEvents) AuthEvents {
	if e == nil {
		return noEvents{}
	}
	return e
}

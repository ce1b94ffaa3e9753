package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/pkg/jwtx"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

type SessionConfig struct {
	Secret       []byte
	Issuer       string
	TTL          time.Duration
	RefreshAfter time.Duration

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// SessionService mints and checks stateless session tokens. Nothing is
// stored server-side, so a token stays valid until it expires.
type SessionService struct {
	signer       *jwtx.HS256Signer
	verifier     *jwtx.HS256Verifier
	issuer       string
	ttl          time.Duration
	refreshAfter time.Duration
	now          func() time.Time
	events       AuthEvents
}

func NewSessionService(cfg SessionConfig, events AuthEvents) (*SessionService, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = jwtx.DefaultSessionTTL
	}
	if cfg.RefreshAfter <= 0 {
		cfg.RefreshAfter = jwtx.DefaultRefreshAfter
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	signer, err := jwtx.NewHS256Signer(cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("session signer: %w", err)
	}
	verifier, err := jwtx.NewHS256Verifier(cfg.Secret, jwtx.VerifyOptions{
		Issuer: cfg.Issuer,
		Now:    cfg.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("session verifier: %w", err)
	}

	return &SessionService{
		signer:       signer,
		verifier:     verifier,
		issuer:       cfg.Issuer,
		ttl:          cfg.TTL,
		refreshAfter: cfg.RefreshAfter,
		now:          cfg.Now,
		events:       eventsOrNoop(events),
	}, nil
}

// TTL is the lifetime of a freshly minted token.
func (s *SessionService) TTL() time.Duration { return s.ttl }

// Mint issues a token for id starting now.
func (s *SessionService) Mint(id domain.Identity) (string, jwtx.Claims, error) {
	claims := jwtx.NewSessionClaims(id.ID, id.Username, jwtx.ProviderCredentials, s.issuer, s.ttl, s.now())
	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", jwtx.Claims{}, fmt.Errorf("mint session: %w", err)
	}
	return token, claims, nil
}

// Validate returns the claims of a good token. Every failure, whatever the
// cause, comes back wrapping ErrUnauthenticated.
func (s *SessionService) Validate(_ context.Context, token string) (jwtx.Claims, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return claims, nil
}

// Refresh reissues claims that are older than the refresh threshold with a
// new issue time. Younger sessions are returned with ok=false.
func (s *SessionService) Refresh(ctx context.Context, claims jwtx.Claims) (string, bool, error) {
	if claims.Age(s.now()) <= s.refreshAfter {
		return "", false, nil
	}

	token, _, err := s.Mint(domain.Identity{ID: claims.Subject, Username: claims.Username})
	if err != nil {
		return "", false, err
	}

	s.events.AuthEvent(EventRefresh, OutcomeOK)
	slogx.FromContext(ctx).Info("session refreshed", "user_id", claims.Subject)
	return token, true, nil
}

package steam

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"steam-inventory/internal/domain"
)

type assertionVerifier interface {
	AuthURL() (string, error)
	Verify(ctx context.Context, params url.Values) (string, error)
}

type summaryFetcher interface {
	Summary(ctx context.Context, steamID string) (domain.Principal, error)
}

// Authenticator is the identity provider seen by the HTTP layer: OpenID
// proves who the browser is, the player summary describes them.
type Authenticator struct {
	openID  assertionVerifier
	players summaryFetcher
	logger  *slog.Logger
}

// NewAuthenticator wires an OpenID verifier and a player summary source.
func NewAuthenticator(openID assertionVerifier, players summaryFetcher, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Authenticator{openID: openID, players: players, logger: logger.With("component", "steam")}
}

// AuthURL returns the provider URL that starts the sign-in flow.
func (a *Authenticator) AuthURL(_ context.Context) (string, error) {
	return a.openID.AuthURL()
}

// Authenticate verifies the callback parameters and returns the principal.
func (a *Authenticator) Authenticate(ctx context.Context, params url.Values) (domain.Principal, error) {
	steamID, err := a.openID.Verify(ctx, params)
	if err != nil {
		return domain.Principal{}, err
	}
	p, err := a.players.Summary(ctx, steamID)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("load profile for %s: %w", steamID, err)
	}
	a.logger.DebugContext(ctx, "steam profile loaded",
		"steam_id", p.SteamID,
		"persona_name", p.DisplayName,
		"persona_state", p.PersonaState.String(),
		"avatar_url", p.AvatarURL,
		"profile_url", p.ProfileURL,
	)
	return p, nil
}

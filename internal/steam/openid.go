package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/markbates/goth/providers/steam"
)

// OpenID drives the Steam OpenID 2.0 redirect and assertion verification
// through the goth Steam provider.
type OpenID struct {
	provider *steam.Provider
}

// NewOpenID creates the OpenID client. callbackURL is both the return_to
// address and, through its scheme and host, the OpenID realm. A nil client
// uses http.DefaultClient.
func NewOpenID(apiKey, callbackURL string, client *http.Client) *OpenID {
	p := steam.New(apiKey, callbackURL)
	p.HTTPClient = client
	return &OpenID{provider: p}
}

// AuthURL returns the Steam login URL the browser is sent to.
func (o *OpenID) AuthURL() (string, error) {
	sess, err := o.provider.BeginAuth("")
	if err != nil {
		return "", fmt.Errorf("begin steam auth: %w", err)
	}
	authURL, err := sess.GetAuthURL()
	if err != nil {
		return "", fmt.Errorf("steam auth url: %w", err)
	}
	return authURL, nil
}

// Verify checks the assertion Steam appended to the callback URL with a
// check_authentication request and returns the asserted Steam ID. The
// request is cancelled together with ctx.
func (o *OpenID) Verify(ctx context.Context, params url.Values) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p := o.boundProvider(ctx)
	sess, err := p.BeginAuth("")
	if err != nil {
		return "", fmt.Errorf("begin steam auth: %w", err)
	}
	if _, err := sess.Authorize(p, params); err != nil {
		return "", fmt.Errorf("verify steam assertion: %w", err)
	}
	s, ok := sess.(*steam.Session)
	if !ok || s.SteamID == "" {
		return "", fmt.Errorf("verify steam assertion: no steam id in session")
	}
	return s.SteamID, nil
}

// boundProvider returns a copy of the provider whose HTTP client sends every
// request with ctx.
func (o *OpenID) boundProvider(ctx context.Context) *steam.Provider {
	p := *o.provider
	client := *o.provider.Client()
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client.Transport = contextTransport{ctx: ctx, base: base}
	p.HTTPClient = &client
	return &p
}

type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

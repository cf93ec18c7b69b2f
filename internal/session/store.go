// Package session keeps the authenticated principal in a signed cookie.
//
// The cookie value is an HS256 JWT whose claims carry the principal record,
// so no server-side state is kept between requests.
package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"steam-inventory/internal/domain"
)

// CookieName is the session cookie name.
const CookieName = "steam_session"

const issuer = "steam-inventory"

type principalClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Profile  string `json:"profile"`
	State    int    `json:"state"`
	RealName string `json:"real_name,omitempty"`
}

// Store signs and verifies session cookies.
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewStore creates a cookie store. secure sets the cookie Secure flag and
// should be true in production.
func NewStore(secret string, ttl time.Duration, secure bool) (*Store, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Store{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}, nil
}

// Save writes a fresh session cookie for p.
func (s *Store) Save(w http.ResponseWriter, p domain.Principal) error {
	now := s.now()
	c := principalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   p.SteamID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Name:     p.DisplayName,
		Avatar:   p.AvatarURL,
		Profile:  p.ProfileURL,
		State:    int(p.PersonaState),
		RealName: p.RealName,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
		Expires:  now.Add(s.ttl),
	})
	return nil
}

// Load returns the principal held by the request's session cookie.
// domain.ErrNoSession is returned when no cookie is present.
func (s *Store) Load(r *http.Request) (domain.Principal, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return domain.Principal{}, domain.ErrNoSession
	}

	var c principalClaims
	_, err = jwt.ParseWithClaims(strings.TrimSpace(cookie.Value), &c, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("session verification failed: %w", err)
	}

	p, err := domain.NewPrincipal(domain.ProfileInput{
		SteamID:      c.Subject,
		PersonaName:  c.Name,
		AvatarMedium: c.Avatar,
		ProfileURL:   c.Profile,
		PersonaState: c.State,
		RealName:     c.RealName,
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("session claims: %w", err)
	}
	return p, nil
}

// Destroy expires the session cookie. The token itself stays valid until
// its exp claim; there is no server-side revocation list.
func (s *Store) Destroy(w http.ResponseWriter, _ *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

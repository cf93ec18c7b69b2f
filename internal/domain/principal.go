package domain

import (
	"regexp"
	"strings"
)

// DefaultAvatarURL is served when the provider returns no avatar.
const DefaultAvatarURL = "/static/default-avatar.svg"

var steamIDPattern = regexp.MustCompile(`^[0-9]{17}$`)

// PersonaState is the Steam presence state of a principal.
type PersonaState int

const (
	PersonaOffline PersonaState = iota
	PersonaOnline
	PersonaBusy
	PersonaAway
	PersonaSnooze
	PersonaLookingToTrade
	PersonaLookingToPlay
)

var personaStateLabels = map[PersonaState]string{
	PersonaOffline:        "Offline",
	PersonaOnline:         "Online",
	PersonaBusy:           "Busy",
	PersonaAway:           "Away",
	PersonaSnooze:         "Snooze",
	PersonaLookingToTrade: "Looking to Trade",
	PersonaLookingToPlay:  "Looking to Play",
}

// String returns the display label, "Unknown" outside the 0-6 range.
func (s PersonaState) String() string {
	if label, ok := personaStateLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Principal is the authenticated identity held in a session. Values are
// built once from the provider response through NewPrincipal and never
// modified afterwards.
type Principal struct {
	SteamID      string
	DisplayName  string
	AvatarURL    string
	ProfileURL   string
	PersonaState PersonaState
	RealName     string
}

// ProfileInput carries the provider fields a Principal is built from.
type ProfileInput struct {
	SteamID      string
	PersonaName  string
	AvatarMedium string
	ProfileURL   string
	PersonaState int
	RealName     string
}

// NewPrincipal validates the provider profile and returns the Principal for it.
func NewPrincipal(in ProfileInput) (Principal, error) {
	id := strings.TrimSpace(in.SteamID)
	if !ValidSteamID(id) {
		return Principal{}, ErrValidation("invalid steam id %q", in.SteamID)
	}
	return Principal{
		SteamID:      id,
		DisplayName:  strings.TrimSpace(in.PersonaName),
		AvatarURL:    secureAvatarURL(in.AvatarMedium),
		ProfileURL:   strings.TrimSpace(in.ProfileURL),
		PersonaState: PersonaState(in.PersonaState),
		RealName:     strings.TrimSpace(in.RealName),
	}, nil
}

// ValidSteamID reports whether id is a 64-bit Steam ID in decimal form.
func ValidSteamID(id string) bool {
	return steamIDPattern.MatchString(id)
}

// ProfilePath is the canonical profile page path for the principal.
func (p Principal) ProfilePath() string {
	return "/profile/" + p.SteamID
}

func secureAvatarURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultAvatarURL
	}
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	return raw
}

package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaState_String(t *testing.T) {
	tests := []struct {
		state PersonaState
		want  string
	}{
		{PersonaOffline, "Offline"},
		{PersonaOnline, "Online"},
		{PersonaBusy, "Busy"},
		{PersonaAway, "Away"},
		{PersonaSnooze, "Snooze"},
		{PersonaLookingToTrade, "Looking to Trade"},
		{PersonaLookingToPlay, "Looking to Play"},
		{PersonaState(7), "Unknown"},
		{PersonaState(-1), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestNewPrincipal(t *testing.T) {
	p, err := NewPrincipal(ProfileInput{
		SteamID:      "76561198000000000",
		PersonaName:  " gaben ",
		AvatarMedium: "http://avatars.steamstatic.com/abc_medium.jpg",
		ProfileURL:   "https://steamcommunity.com/id/gaben/",
		PersonaState: 1,
		RealName:     "Gabe",
	})
	require.NoError(t, err)
	assert.Equal(t, "76561198000000000", p.SteamID)
	assert.Equal(t, "gaben", p.DisplayName)
	assert.Equal(t, "https://avatars.steamstatic.com/abc_medium.jpg", p.AvatarURL)
	assert.Equal(t, PersonaOnline, p.PersonaState)
	assert.Equal(t, "/profile/76561198000000000", p.ProfilePath())
}

func TestNewPrincipal_DefaultAvatar(t *testing.T) {
	p, err := NewPrincipal(ProfileInput{SteamID: "76561198000000001"})
	require.NoError(t, err)
	assert.Equal(t, DefaultAvatarURL, p.AvatarURL)
}

func TestNewPrincipal_RejectsInvalidID(t *testing.T) {
	for _, id := range []string{"", "123", "7656119800000000x", "765611980000000000"} {
		_, err := NewPrincipal(ProfileInput{SteamID: id})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "id %q", id)
	}
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{SteamID: "76561198000000000"})
	p, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "76561198000000000", p.SteamID)
}

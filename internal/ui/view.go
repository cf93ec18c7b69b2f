package ui

import (
	"encoding/json"
	"strings"

	"steam-inventory/internal/domain"
	"steam-inventory/internal/inventory"
)

// itemView is the render model of one inventory item. The same values feed
// the grid and the JSON data island read by the detail panel.
type itemView struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	MarketName  string `json:"market_name,omitempty"`
	Type        string `json:"type,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	RarityName  string `json:"rarity"`
	RarityColor string `json:"rarity_color"`
	WearName    string `json:"wear,omitempty"`
	WearColor   string `json:"wear_color"`
	Exterior    string `json:"exterior,omitempty"`
	FlavorText  string `json:"flavor_text,omitempty"`
	Collection  string `json:"collection,omitempty"`
}

type profileView struct {
	Principal  domain.Principal
	Items      []itemView
	TotalCount int
	// Debug holds the indented principal record; empty outside development.
	Debug string
}

func newItemViews(items []domain.Item) []itemView {
	views := make([]itemView, 0, len(items))
	for i := range items {
		item := items[i]
		attrs := inventory.Describe(item)
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = strings.TrimSpace(item.MarketHashName)
		}
		if name == "" {
			name = "Unnamed item"
		}
		views = append(views, itemView{
			Index:       i,
			Name:        name,
			MarketName:  item.MarketHashName,
			Type:        item.Type,
			IconURL:     attrs.IconURL,
			RarityName:  attrs.Rarity.Name,
			RarityColor: attrs.Rarity.Color,
			WearName:    attrs.Wear.Name,
			WearColor:   attrs.Wear.Color,
			Exterior:    attrs.Exterior,
			FlavorText:  attrs.FlavorText,
			Collection:  attrs.Collection,
		})
	}
	return views
}

func newProfileView(p domain.Principal, inv domain.Inventory, development bool) profileView {
	v := profileView{
		Principal:  p,
		Items:      newItemViews(inv.Items),
		TotalCount: inv.TotalCount,
	}
	if development {
		v.Debug = debugRecord(p)
	}
	return v
}

// itemsJSON encodes the data island payload. json.Marshal escapes <, > and &
// so the result cannot terminate the enclosing script element.
func itemsJSON(items []itemView) string {
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func debugRecord(p domain.Principal) string {
	b, err := json.MarshalIndent(struct {
		SteamID      string `json:"steam_id"`
		DisplayName  string `json:"display_name"`
		AvatarURL    string `json:"avatar_url"`
		ProfileURL   string `json:"profile_url"`
		PersonaState int    `json:"persona_state"`
		Status       string `json:"status"`
		RealName     string `json:"real_name,omitempty"`
	}{
		SteamID:      p.SteamID,
		DisplayName:  p.DisplayName,
		AvatarURL:    p.AvatarURL,
		ProfileURL:   p.ProfileURL,
		PersonaState: int(p.PersonaState),
		Status:       p.PersonaState.String(),
		RealName:     p.RealName,
	}, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"steam-inventory/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func profilePage(v profileView) Node {
	p := v.Principal
	name := p.DisplayName
	if name == "" {
		name = p.SteamID
	}
	return page(name+"'s Profile",
		Div(
			Class("profile-page"),
			Nav(
				Class("navigation"),
				A(Href("/"), Text("Home")),
				A(Href("/logout"), Class("logout-btn"), Text("Logout")),
			),
			profileCard(v, name),
			inventorySection(v),
			Aside(ID("item-detail"), Class("item-detail"), Attr("hidden"), Attr("aria-live", "polite")),
		),
		Script(Type("application/json"), ID("inventory-data"), Raw(itemsJSON(v.Items))),
		Script(Src("/static/inventory.js"), Attr("defer")),
	)
}

func profileCard(v profileView, name string) Node {
	p := v.Principal
	avatar := p.AvatarURL
	if avatar == "" {
		avatar = domain.DefaultAvatarURL
	}
	profileURL := externalHref(p.ProfileURL)
	status := p.PersonaState.String()

	return Section(
		Class("profile-card"),
		Div(
			Class("profile-header"),
			Div(Class("profile-name"), Text(name)),
			Div(
				Class("profile-image"),
				Img(Src(avatar), Alt("Steam Avatar"), Data("fallback", domain.DefaultAvatarURL)),
			),
		),
		Div(
			Class("profile-details"),
			P(Text("Steam ID: "+p.SteamID)),
			If(profileURL != "",
				P(A(Href(profileURL), Target("_blank"), Rel("noopener noreferrer"), Text("View Steam Profile"))),
			),
			If(p.RealName != "", P(Text("Name: "+p.RealName))),
			P(
				Text("Status: "),
				Span(Class("status status-"+strings.ToLower(strings.ReplaceAll(status, " ", "-"))), Text(status)),
			),
			If(v.Debug != "",
				Details(
					Class("debug"),
					Summary(Text("Debug Info")),
					Pre(Text(v.Debug)),
				),
			),
		),
	)
}

func inventorySection(v profileView) Node {
	if len(v.Items) == 0 {
		return Section(
			Class("inventory"),
			H2(Text("Inventory")),
			Div(Class("empty-state"), P(Text("No items to show. The inventory is empty, private, or unavailable right now."))),
		)
	}

	cards := make([]Node, 0, len(v.Items))
	for i := range v.Items {
		cards = append(cards, itemCard(v.Items[i]))
	}
	total := v.TotalCount
	if total < len(v.Items) {
		total = len(v.Items)
	}
	return Section(
		Class("inventory"),
		H2(Text("Inventory")),
		P(Class("inventory-count"), Text(fmt.Sprintf("Showing %d item types (%d items in total).", len(v.Items), total))),
		Div(Class("item-grid"), Group(cards)),
	)
}

func itemCard(item itemView) Node {
	return Button(
		Type("button"),
		Class("item-card"),
		Data("index", strconv.Itoa(item.Index)),
		Style(cssColor("border-color", item.RarityColor)),
		If(item.IconURL != "", Img(Src(item.IconURL), Alt(item.Name), Attr("loading", "lazy"))),
		Span(Class("item-name"), Text(item.Name)),
		Span(Class("item-rarity"), Style(cssColor("color", item.RarityColor)), Text(item.RarityName)),
		If(item.WearName != "",
			Span(Class("item-wear"), Style(cssColor("color", item.WearColor)), Text(item.WearName)),
		),
	)
}

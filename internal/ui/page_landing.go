package ui

import (
	"steam-inventory/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const steamSignInImage = "https://community.akamai.steamstatic.com/public/images/signinthroughsteam/sits_01.png"

func landingPage(current *domain.Principal) gomponents.Node {
	var session gomponents.Node
	if current != nil {
		name := current.DisplayName
		if name == "" {
			name = current.SteamID
		}
		session = html.Div(
			html.Class("session-box"),
			html.P(gomponents.Text("Signed in as "+name+".")),
			html.P(
				html.A(html.Href(current.ProfilePath()), html.Class("btn"), gomponents.Text("View your inventory")),
				html.A(html.Href("/logout"), html.Class("logout-btn"), gomponents.Text("Logout")),
			),
		)
	}

	return page("Welcome",
		html.Main(
			html.Class("layout landing"),
			html.H1(html.Class("page-title"), gomponents.Text("Steam Inventory Viewer")),
			html.P(gomponents.Text("Sign in with your Steam account to browse your public Counter-Strike inventory.")),
			gomponents.If(current == nil,
				html.A(
					html.Href("/auth/steam"),
					html.Class("steam-login"),
					html.Img(html.Src(steamSignInImage), html.Alt("Sign in through Steam")),
					html.Span(html.Class("steam-login-text"), gomponents.Text("Sign in through Steam")),
				),
			),
			session,
		),
	)
}

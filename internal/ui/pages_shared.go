package ui

import (
	"net/url"
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const appName = "Steam Inventory"

func page(title string, body ...Node) Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(Text(title+" | "+appName)),
				Link(Rel("icon"), Href("data:,")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(body...),
		),
	)
}

func errorPage(title, message string) Node {
	return page(title,
		Main(
			Class("layout"),
			H1(Class("page-title"), Text(title)),
			P(Text(message)),
			P(A(Href("/"), Text("Back to start"))),
		),
	)
}

// externalHref returns raw when it is an absolute http(s) URL and "" otherwise.
func externalHref(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return ""
	}
	return u.String()
}

func cssColor(property, color string) string {
	return property + ": " + color
}

// Package assets embeds the stylesheet, client script and images served
// under /static.
package assets

import "embed"

//go:embed static
var staticFS embed.FS

func StaticFS() embed.FS {
	return staticFS
}

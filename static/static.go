// Package static embeds the HTML templates and assets served by the app.
package static

import "embed"

// Templates holds the page templates. base.html defines the layout every
// other page is rendered into.
//
//go:embed templates/*.html
var Templates embed.FS

// Assets is served under /static.
//
//go:embed assets
var Assets embed.FS

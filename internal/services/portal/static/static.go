package static

import "embed"

// FS exposes portal static assets for HTTP serving.
//
//go:embed logos/*.png
var FS embed.FS

// Package web holds the console's templates and static assets.
package web

import "embed"

//go:embed templates static
var FS embed.FS

// Package views embeds the HTML templates shipped with the binary.
package views

import "embed"

//go:embed *.html
var FS embed.FS

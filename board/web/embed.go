// ABOUTME: Embedded filesystem for board templates and static assets.
// ABOUTME: Lets the binary serve the UI without runtime filesystem paths.
package web

import "embed"

//go:embed templates/*.html static/*
var ContentFS embed.FS

// Package web embeds the static signup frontend for the activities server.
package web

import "embed"

// Assets contains the embedded static files (HTML, CSS, JS) for the signup page.
//
//go:embed index.html css/* js/*
var Assets embed.FS

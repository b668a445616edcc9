// Package web embeds the single-page frontend and exposes it to the HTTP
// layer. The frontend is a plain-JS client of the quote API with three
// routes (/, /quote/new, /quote/edit/:id); the server answers all three
// with the same index document and the client router takes over.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Assets returns the static file tree (styles, scripts) rooted at the
// directory the frontend references, so request paths map directly onto
// file paths.
func Assets() (fs.FS, error) {
	return fs.Sub(content, "static")
}

// Index returns the SPA entry document served for every client route.
func Index() ([]byte, error) {
	return content.ReadFile("static/index.html")
}

package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var assets embed.FS

// StaticFS returns a file system for serving /static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is embedded at build time; fall back to an
		// empty FS rather than panicking.
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// IndexHTML returns the embedded widget page.
func IndexHTML() []byte {
	b, err := assets.ReadFile("static/index.html")
	if err != nil {
		return nil
	}
	return b
}

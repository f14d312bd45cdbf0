package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// Static asset names referenced by the page.
const (
	StylesheetName = "signup.css"
	ScriptName     = "signup.js"
	LogoName       = "logo.svg"
	ImageName      = "image.webp"
)

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the embedded stylesheet, script and logo so callers can
// serve them over HTTP. The decorative image is supplied by the host.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but fall back to raw FS so assets remain usable.
		return embeddedAssets
	}
	return sub
}

func defaultLogo() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+LogoName)
	if err != nil {
		return ""
	}
	return string(data)
}

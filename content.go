package docsite

import "embed"

// ContentFS holds the docs and static files the binaries ship with.
//
//go:embed all:docs all:static
var ContentFS embed.FS

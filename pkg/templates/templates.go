// Package templates provides embedded configuration and code templates.
package templates

import _ "embed"

// ConfigYAML contains the default gnlang.yaml template for application
// configuration.
//
//go:embed config.yaml
var ConfigYAML string

// LangGo is the text/template of the generated Go source with language
// profiles.
//
//go:embed lang.go.tmpl
var LangGo string

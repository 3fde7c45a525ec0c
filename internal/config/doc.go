// Package config loads the site and server configuration.
//
// Values come from three layers, later layers winning: the built-in Pipeguru
// site definition, an optional YAML file, and DOCS_* environment variables
// (DOCS_SITE_TITLE, DOCS_SERVER_ADDR, ...). The result is validated before it
// is returned.
package config

// Package file provides file-based configuration loading.
//
// Configuration lives in a single TOML file (by default
// ~/.membank/config.toml) holding the data directory and the source table
// registry. A missing file is not an error: the built-in registry and
// default paths apply.
package file

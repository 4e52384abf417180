// Package config loads and validates Encore configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/encore/config.toml with an encore.toml in the working directory as
// a project-local override. Load applies defaults first, then the file, then
// normalization (path expansion) and validation, so a missing file still
// yields a fully usable configuration.
package config

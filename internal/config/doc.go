// SPDX-License-Identifier: MPL-2.0

// Package config loads the goobits tool configuration.
//
// Configuration lives in a CUE file validated against an embedded schema and
// is merged into Viper over built-in defaults. Everything is optional: a
// missing config file means defaults, never an error.
package config

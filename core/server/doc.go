// Package server holds the HTTP server configuration.
//
// The main application entry point handles the actual server startup; this
// package only defines the configuration structure and derived values, such
// as the request body limit applied to media uploads.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to configure the Fiber application.
package server

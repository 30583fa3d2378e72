// Package slog provides decorators that log the operations of resumer
// services using log/slog.
package slog

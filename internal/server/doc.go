// Package server owns the process lifecycle of the HTTP transport: it
// starts the listener and shuts it down gracefully when the process
// receives a termination signal.
package server

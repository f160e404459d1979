package vecloc

import "errors"

// Common errors used throughout the vecloc package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")

	// ErrContainerNotFound indicates a container name is not defined in the configuration.
	// Container errors
	ErrContainerNotFound = errors.New("container not found")
	// ErrNamesFile indicates a container names file could not be read.
	ErrNamesFile = errors.New("failed to read names file")
)

// Package constants defines global constants used throughout landscapectl.
package constants

// ProjectName is the name of the CLI tool and application
const ProjectName = "landscapectl"

// Environment represents the execution environment the logger is configured for.
type Environment string

// Environment types for logger configuration.
const (
	Production Environment = "production"
	CLI        Environment = "cli"
)

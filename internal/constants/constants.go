// Package constants provides named constants used throughout the attractgen codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

// Value generation constants
const (
	// DefaultLow is the lower bound of the magnitude of a generated attraction value.
	DefaultLow = 1.0

	// DefaultHigh is the upper bound of the magnitude of a generated attraction value.
	DefaultHigh = 5.0

	// RoundingStep is the granularity every generated magnitude is rounded to.
	RoundingStep = 0.5

	// NegateProbability is the chance that a generated value has its sign flipped.
	NegateProbability = 0.5
)

// Output constants
const (
	// DefaultOutputFile is the data file written when no filename is given.
	DefaultOutputFile = "attraction_matrix.txt"

	// ConfigDirName is the directory under the user's home holding config.yaml.
	ConfigDirName = ".attractgen"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"
)

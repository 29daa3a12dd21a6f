package numformat

import "errors"

// Construction errors. Every error returned by New wraps ErrInvalidConfiguration.
var (
	// ErrInvalidConfiguration is returned when a format cannot be constructed from the given limits.
	ErrInvalidConfiguration = errors.New("invalid number format configuration")

	// ErrInvalidPrecision is returned when precision is not positive or exceeds the int32 range.
	ErrInvalidPrecision = errors.New("precision must be between 1 and 2147483647")

	// ErrInvalidScale is returned when scale is negative or not less than precision.
	ErrInvalidScale = errors.New("scale must be a non-negative number less than precision")

	// ErrUnknownDigitProfile is returned for a digit profile other than ascii or unicode.
	ErrUnknownDigitProfile = errors.New("unknown digit profile")
)

// Validation reasons reported by Format.Check. They never escape IsValid.
var (
	ErrEmpty             = errors.New("value is empty")
	ErrMalformed         = errors.New("value does not match the number grammar")
	ErrPrecisionExceeded = errors.New("value exceeds precision")
	ErrScaleExceeded     = errors.New("value exceeds scale")
	ErrNegative          = errors.New("negative value not allowed")
)

// Config and profile loading errors.
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse number format config from environment")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrParsingProfiles is returned when a profile document is not valid YAML.
	ErrParsingProfiles = errors.New("failed to parse number format profiles")

	// ErrMultipleProfileDocuments is returned when a profile stream holds more than one YAML document.
	ErrMultipleProfileDocuments = errors.New("number format profiles must be a single YAML document")

	// ErrProfilesLoadCancelled is returned when the context is done before profiles are decoded.
	ErrProfilesLoadCancelled = errors.New("number format profiles loading cancelled")

	// ErrNoProfiles is returned when a profile document defines no formats.
	ErrNoProfiles = errors.New("no number format profiles defined")

	// ErrInvalidProfile is returned when a profile entry fails format construction.
	ErrInvalidProfile = errors.New("invalid number format profile")

	// ErrProfileNotFound is returned when a profile name is not registered.
	ErrProfileNotFound = errors.New("number format profile not found")
)

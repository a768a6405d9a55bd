package cmd

type Config struct {
	HTTPPort string

	// CarrierWeightUnit is the unit symbol weights are reported in when a
	// request does not name one.
	CarrierWeightUnit string

	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

package model

// Flags represents the parsed command line.
type Flags struct {
	// Mode is the single output mode argument, e.g. "-PJ".
	Mode string
	// Args holds every mode argument seen; a valid invocation has exactly one.
	Args        []string
	CPUInfoPath string
	LogLevel    string
	Version     bool
	Help        bool
}

// Package flag parses the pid command line.
//
// Output modes keep their historical single-dash form (-CJ, -PX, -H, ...) and
// are taken verbatim; everything else is handed to pflag.
package flag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/pid/model"
)

const usageHeader = "PID V1.00 (Raspberry Pi Identification Utility)"

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	pflag.CommandLine.Init(os.Args[0], pflag.ContinueOnError)
	pflag.CommandLine.SetOutput(io.Discard)

	cpuinfoPath := pflag.String("cpuinfo", "", "Path to the cpu info file (default /proc/cpuinfo, or $PID_CPUINFO)")
	logLevel := pflag.String("log-level", "", "Log diagnostics to stderr at this level (debug, info, warn, error)")
	version := pflag.Bool("version", false, "Show version information")
	help := pflag.BoolP("help", "h", false, "Show this help")

	modes, rest := splitModeArgs(pflag.CommandLine, os.Args[1:])
	if err := pflag.CommandLine.Parse(rest); err != nil {
		return model.Flags{}, &ExitError{Code: 2, Message: err.Error()}
	}
	modes = append(modes, pflag.Args()...)

	flags := model.Flags{
		Args:        modes,
		CPUInfoPath: *cpuinfoPath,
		LogLevel:    *logLevel,
		Version:     *version,
		Help:        *help,
	}
	if len(modes) == 1 {
		flags.Mode = modes[0]
	}

	return flags, nil
}

// splitModeArgs separates single-dash upper-case mode tokens from the
// arguments meant for fs. The value of a long option given as a separate
// argument ("--cpuinfo -Foo") stays with its option, and everything after
// "--" goes to fs.
func splitModeArgs(fs *pflag.FlagSet, args []string) (modes, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return modes, append(rest, args[i:]...)
		}
		if isModeToken(a) {
			modes = append(modes, a)
			continue
		}
		rest = append(rest, a)
		if takesValue(fs, a) && i+1 < len(args) {
			i++
			rest = append(rest, args[i])
		}
	}
	return modes, rest
}

// takesValue reports whether a is a long option without an inline value
// whose flag requires one.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if !strings.HasPrefix(a, "--") || strings.Contains(a, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimPrefix(a, "--"))
	return f != nil && f.NoOptDefVal == ""
}

func isModeToken(a string) bool {
	if len(a) < 2 || a[0] != '-' || a[1] == '-' {
		return false
	}
	return a[1] >= 'A' && a[1] <= 'Z'
}

// PrintUsage writes the help text to w.
func (s *service) PrintUsage(w io.Writer) {
	fmt.Fprintln(w, usageHeader)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage is as follows:")
	fmt.Fprintln(w, "pid [options] <mode>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Where mode is one of the following, NOTE: exactly one mode can be used at a time.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "\t-CJ\t\tDisplay entire cpu info file as JSON formatted data")
	fmt.Fprintln(w, "\t-CX\t\tDisplay entire cpu info file as XML formatted data")
	fmt.Fprintln(w, "\t-CY\t\tDisplay entire cpu info file as YAML formatted data")
	fmt.Fprintln(w, "\t-CT\t\tDisplay entire cpu info file as a table")
	fmt.Fprintln(w, "\t-PJ\t\tDisplay platform information as JSON formatted data")
	fmt.Fprintln(w, "\t-PX\t\tDisplay platform information as XML formatted data")
	fmt.Fprintln(w, "\t-PY\t\tDisplay platform information as YAML formatted data")
	fmt.Fprintln(w, "\t-PT\t\tDisplay platform information as a table")
	fmt.Fprintln(w, "\t-L\t\tList every known revision code")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The following modes are used to get single responses suitable for use in shell scripts and other utilities:")
	fmt.Fprintln(w, "\t-H\t\tDisplay platform hardware")
	fmt.Fprintln(w, "\t-S\t\tDisplay platform serial number")
	fmt.Fprintln(w, "\t-V\t\tDisplay Raspberry Pi Version (1,2 or 3)")
	fmt.Fprintln(w, "\t-M\t\tDisplay Raspberry Pi Model")
	fmt.Fprintln(w, "\t-R\t\tDisplay Raspberry Pi Model Revision")
	fmt.Fprintln(w, "\t-C\t\tDisplay Raspberry Pi Memory Capacity")
	fmt.Fprintln(w, "\t-N\t\tDisplay number of processor cores")
	fmt.Fprintln(w, "\t-P\t\tDisplay processor model name")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, strings.TrimRight(pflag.CommandLine.FlagUsages(), "\n")+"\n")
}

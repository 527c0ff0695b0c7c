// Package dusktop implements the dusktop line protocol: an interactive TCP
// client console and the command server it talks to. Messages are plain text
// terminated by a single newline; there is no further framing.
package dusktop

import (
	"errors"
	"strconv"
	"syscall"
)

const (
	// DefaultPort is the port used when no argument selects one.
	DefaultPort = 1050

	// DefaultChunkSize is the upper bound on bytes read per receive call.
	DefaultChunkSize = 1024
)

// ParsePort scans args in order and returns the first value that parses as
// an integer in [0, 65535]. Arguments that are not integers or fall outside
// the range are skipped without error. If no argument qualifies, it returns
// DefaultPort.
func ParsePort(args []string) int {
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			continue
		}
		if v >= 0 && v <= 65535 {
			return v
		}
	}
	return DefaultPort
}

// ErrorCode returns the OS error number behind err, or 0 when err carries
// none (e.g. a clean EOF from the peer).
func ErrorCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}

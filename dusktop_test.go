package dusktop

import (
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
	"testing"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"noArgs", nil, 1050},
		{"single", []string{"4040"}, 4040},
		{"firstValidWins", []string{"4040", "5050"}, 4040},
		{"skipsNonNumeric", []string{"server", "-v", "4040"}, 4040},
		{"skipsOutOfRange", []string{"70000", "-1", "4040"}, 4040},
		{"zero", []string{"0"}, 0},
		{"upperBound", []string{"65535"}, 65535},
		{"allInvalid", []string{"one", "65536", "1.5"}, 1050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if expected, actual := tt.want, ParsePort(tt.args); actual != expected {
				t.Errorf("expected port %d but was %d", expected, actual)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	err := fmt.Errorf("send: %w", &net.OpError{
		Op:  "write",
		Net: "tcp",
		Err: os.NewSyscallError("write", syscall.EPIPE),
	})
	if expected, actual := int(syscall.EPIPE), ErrorCode(err); actual != expected {
		t.Errorf("expected code %d but was %d", expected, actual)
	}

	if actual := ErrorCode(io.EOF); actual != 0 {
		t.Errorf("expected code 0 for EOF but was %d", actual)
	}
}

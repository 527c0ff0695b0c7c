package dusktop

import (
	"bufio"
	"fmt"
	"io"
)

// ConsoleConfig controls the interactive console loop.
type ConsoleConfig struct {
	Prompt    string
	ChunkSize int
}

var DefaultConsoleConfig = ConsoleConfig{
	Prompt:    "> ",
	ChunkSize: DefaultChunkSize,
}

// RunConsole drives the interactive request/response loop over conn. It
// reads one line at a time from in, prompting on out; an empty line ends the
// loop normally without sending anything. Every other line is written to
// conn with a trailing newline, followed by a single read of up to
// ChunkSize bytes which is printed raw to out. Responses larger than
// ChunkSize are truncated in the printed output and the remainder left in
// the stream.
//
// RunConsole returns nil on the empty-line exit and the failing operation's
// error otherwise, including a peer disconnect during the receive. Every
// call blocks without timeout.
func RunConsole(conn io.ReadWriter, in io.Reader, out io.Writer, config *ConsoleConfig) error {
	if config == nil {
		config = &DefaultConsoleConfig
	}

	lines := bufio.NewScanner(in)
	buf := make([]byte, config.ChunkSize)

	for {
		if _, err := io.WriteString(out, config.Prompt); err != nil {
			return fmt.Errorf("console write: %w", err)
		}

		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return fmt.Errorf("console read: %w", err)
			}
			return fmt.Errorf("console read: %w", io.EOF)
		}
		msg := lines.Text()
		if len(msg) == 0 {
			return nil
		}

		if _, err := io.WriteString(conn, msg+"\n"); err != nil {
			return fmt.Errorf("send: %w", err)
		}

		// One shot; no drain loop and no timeout.
		n, err := conn.Read(buf)
		if err != nil {
			return fmt.Errorf("receive: %w", err)
		}
		if _, err := fmt.Fprintf(out, "%s\n", buf[:n]); err != nil {
			return fmt.Errorf("console write: %w", err)
		}
	}
}

package dusktop

import (
	"bufio"
	"errors"
	"io"
	"log"
	"net"
	"sync"
)

// AckCommand is the fixed command string clients send to acknowledge.
const AckCommand = "1"

var ErrNegativeLimit = errors.New("dusktop: negative connection limit")

// Server is the dusktop command server: a TCP listener that handles each
// connection on its own goroutine, reading newline-terminated commands and
// answering the ones it recognizes. Unknown commands are logged and get no
// reply. A malfunctioning or disconnecting client never affects the others.
type Server struct {
	listener net.Listener
	maxConns int

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

// NewServer listens on addr. An address with port 0 listens on a randomly
// allocated port, available afterwards via Addr. maxConns caps the number of
// simultaneously served connections; 0 means no cap, and a negative value is
// an error.
func NewServer(addr string, maxConns int) (*Server, error) {
	if maxConns < 0 {
		return nil, ErrNegativeLimit
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Server{
		listener: listener,
		maxConns: maxConns,
		conns:    make(map[net.Conn]struct{}),
	}, nil
}

// Addr returns the listener's address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Count returns the number of live connections.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Serve accepts connections until the listener is closed. It returns nil
// after Close and the listener's error otherwise. Connections arriving while
// the server is at its connection cap are closed immediately.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		if !s.track(conn) {
			log.Println("rejected connection from", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		log.Println("accepted connection from", conn.RemoteAddr())
		go s.handle(conn)
	}
}

// Close shuts the server down: every live connection is closed, then the
// listener, unblocking Serve. Safe to call more than once.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	conns := make([]net.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
	_ = s.listener.Close()
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if s.maxConns > 0 && len(s.conns) >= s.maxConns {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) drop(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

func (s *Server) handle(conn net.Conn) {
	defer s.drop(conn)
	defer log.Println("closed connection from", conn.RemoteAddr())

	acks := 0
	lines := bufio.NewScanner(conn)
	for lines.Scan() {
		var reply string
		switch command := lines.Text(); command {
		case AckCommand:
			acks++
			log.Printf("ack %d received from %v", acks, conn.RemoteAddr())
			reply = "OK\n"
		case "TEST":
			log.Println("test requested by", conn.RemoteAddr())
			reply = "TEST OK\n"
		case "PING":
			log.Println("ping from", conn.RemoteAddr())
			reply = "PONG\n"
		default:
			// No reply for commands we don't recognize.
			log.Printf("invalid command %q from %v", command, conn.RemoteAddr())
			continue
		}

		if _, err := io.WriteString(conn, reply); err != nil {
			log.Println("error writing to", conn.RemoteAddr(), err)
			return
		}
	}

	if err := lines.Err(); err != nil {
		log.Println("error reading from", conn.RemoteAddr(), err)
	}
}

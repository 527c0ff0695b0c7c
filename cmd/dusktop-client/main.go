package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/mrambler90/dusktop"
)

func main() {
	// Positional arguments only: the first integer in [0, 65535] picks the
	// port, everything else is ignored.
	port := dusktop.ParsePort(os.Args[1:])
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	log.Println("connecting to", addr)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := dusktop.RunConsole(conn, os.Stdin, os.Stdout, nil); err != nil {
		if code := dusktop.ErrorCode(err); code != 0 {
			fmt.Fprintf(os.Stderr, "client error %d: %v\n", code, err)
		} else {
			fmt.Fprintln(os.Stderr, "client error:", err)
		}
		os.Exit(1)
	}

	fmt.Println("client connection terminated")
}

// A plaintext echo server, handy as a peer for the interactive client.
package main

import (
	"flag"
	"log"
	"net"

	"github.com/mrambler90/dusktop"
)

var addr = flag.String("addr", "127.0.0.1:1050", "the address to listen on")

func main() {
	flag.Parse()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("listening on", listener.Addr())

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Println("failed to accept connection", err)
			continue
		}

		go func() {
			log.Println("accepted new connection")
			defer conn.Close()
			defer log.Println("closed connection")

			buf := make([]byte, dusktop.DefaultChunkSize)
			for {
				n, err := conn.Read(buf)
				if err != nil {
					return
				}
				if _, err := conn.Write(buf[:n]); err != nil {
					log.Println("error writing data", err)
					return
				}
			}
		}()
	}
}

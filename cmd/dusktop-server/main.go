package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/mrambler90/dusktop"
)

var (
	addr     = flag.String("addr", "127.0.0.1:1050", "the address to listen on")
	maxConns = flag.Int("max-conns", 0, "maximum simultaneous connections, 0 for no limit")
)

func main() {
	flag.Parse()

	server, err := dusktop.NewServer(*addr, *maxConns)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("listening on", server.Addr())

	// Admin console: "close" shuts the server down, anything else is noise.
	go func() {
		console := bufio.NewScanner(os.Stdin)
		for console.Scan() {
			switch strings.ToLower(console.Text()) {
			case "close":
				server.Close()
				return
			default:
				log.Println("unrecognized command")
			}
		}
	}()

	// Ctrl-C closes everything the same way.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		server.Close()
	}()

	if err := server.Serve(); err != nil {
		log.Fatal(err)
	}
	log.Println("server terminated")
}

/*
Package stdinbridge reads standard input on a dedicated worker and hands each line to the
rest of the program through a bounded channel.

It is useful for interactive programs that read from stdin while waiting for other events:
the blocking read happens on its own OS thread, and the caller selects on the channel
alongside timers, signals or network traffic.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/stdinbridge"
	)

	func main() {
		for line := range stdinbridge.RecvFromStdin(10) {
			fmt.Println("Received:", line)
		}
	}

RecvFromStdin never stops its worker and keeps reading after end-of-stream. Programs that
need to stop reading, or to finish when piped input runs out, use the bridge package:

	b := bridge.Start(10, bridge.WithEOFPolicy(bridge.EOFClose))
	defer b.Close()

	for {
		line, err := b.Recv(ctx)
		if err != nil {
			return err
		}
		handle(line)
	}
*/
package stdinbridge

/*
Package bridge turns a blocking, line-oriented reader (normally os.Stdin) into a bounded
channel of lines that callers drain without blocking their own goroutines.

A Bridge owns exactly one worker goroutine, locked to its own OS thread, which loops over
blocking reads and pushes every decoded line onto a buffered channel. The channel is the only
state shared with the caller: sends block while the buffer is full, receives block while it is
empty, and lines arrive in the order they were read.

# Usage

	b := bridge.Start(10)
	defer b.Close()

	for {
		line, err := b.Recv(ctx)
		if err != nil {
			break // io.EOF once the source is exhausted, ctx.Err() on cancellation
		}
		fmt.Println("Received:", line)
	}

# Hazards

Every bridge started with Start reads from the same os.Stdin. Running two of them at once
splits the input between them in an undefined way.
*/
package bridge

// Command smallt is the terminal to-do list entrypoint.
package main

import (
	"os"

	"smallt/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}

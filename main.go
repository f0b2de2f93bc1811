// Command fixlog runs the bottom-up Horn-clause solver against a program
// supplied as a YAML file (program.ParseText), dispatching to a task
// selected by command-line flag.
package main

import (
	"log"
	"os"

	"github.com/cs-au-dk/fixlog/config"
)

func main() {
	config.Parse(os.Args[1:])

	if err := runPipeline(); err != nil {
		log.Fatal(err)
	}
}

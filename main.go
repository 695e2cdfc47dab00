package main

import (
	"os"

	"github.com/jeeftor/perfscript/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

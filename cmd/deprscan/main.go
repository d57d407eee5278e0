package main

import (
	"os"

	"github.com/moolen/deprscan/cmd/deprscan/commands"
)

func main() {
	os.Exit(commands.Execute())
}

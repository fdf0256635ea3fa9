package main

import (
	"os"

	"github.com/msto63/safecrt/cmd/safecrt/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

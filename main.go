package main

import (
	"os"

	"catalog/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

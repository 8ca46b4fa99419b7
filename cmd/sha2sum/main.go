package main

import (
	"os"

	"github.com/zeebo/sha2/cmd/sha2sum/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

package main

import "github.com/pcotoolkit/cli/cmd/pco"

func main() {
	pco.Main()
}

package main

import "github.com/notargets/ctflux/cmd"

func main() {
	cmd.Execute()
}

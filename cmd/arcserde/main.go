package main

import "github.com/skelhorn/arcserde/cmd/arcserde/cmd"

func main() {
	cmd.Execute()
}

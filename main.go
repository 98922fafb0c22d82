package main

import "github.com/marciooo/nido/cmd"

func main() {
	cmd.Execute()
}

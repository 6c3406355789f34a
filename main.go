package main

import "github.com/codeveda/codeveda/cmd"

func main() {
	cmd.Execute()
}

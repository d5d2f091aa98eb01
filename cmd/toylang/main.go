package main

import "github.com/nojima/toylang/cmd/toylang/commands"

func main() {
	commands.Execute()
}

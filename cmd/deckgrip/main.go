package main

import "deckgrip/internal/cli"

func main() {
	cli.Execute()
}

package main

import "galogen/internal/cli"

func main() {
	cli.Execute()
}

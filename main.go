package main

import "arb-extractor/internal/cli"

func main() {
	cli.Execute()
}

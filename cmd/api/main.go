package main

import "agroconsult/internal/cli"

func main() {
	cli.Execute()
}

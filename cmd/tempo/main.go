package main

import "github.com/emiliopalmerini/tempo/internal/cli"

func main() {
	cli.Execute()
}

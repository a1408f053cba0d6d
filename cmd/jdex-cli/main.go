package main

import "jdex/cmd/jdex-cli/cmd"

func main() {
	cmd.Execute()
}

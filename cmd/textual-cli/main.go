package main

import "signing-core/cmd/textual-cli/cmd"

func main() {
	cmd.Execute()
}

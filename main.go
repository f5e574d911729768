package main

import "github.com/nuts-foundation/nuts-provider-registry/cmd"

func main() {
	cmd.Execute()
}

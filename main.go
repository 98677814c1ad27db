package main

import (
	"github.com/nuts-foundation/nuts-pades/cmd"
)

func main() {
	cmd.Execute()
}

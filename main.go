package main

import (
	"github.com/fontlens/fontlens/cmd"
)

func main() {
	cmd.Execute()
}

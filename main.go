package main

import (
	"github.com/darkwater/console-timeline/cmd"
)

func main() {
	cmd.Execute()
}

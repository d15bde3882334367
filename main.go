package main

import "github.com/mcample/mcample/cmd"

// TODO: optional caller-side cap on rejection tries for the reject command
//       (the core sampler loop is unbounded on purpose)

func main() {
	cmd.Execute()
}

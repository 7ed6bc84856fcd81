package main

import "github.com/ChaseHampton/headstones/cmd"

func main() {
	cmd.Execute()
}

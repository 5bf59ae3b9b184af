package main

import (
	"webradar/cmd"
)

func main() {
	cmd.Execute()
}

package main

import "gowfm/cmd"

func main() {
	cmd.Execute()
}

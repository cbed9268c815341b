package main

import "gridline/cmd"

func main() {
	cmd.Execute()
}

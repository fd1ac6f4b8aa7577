package main

import "togglzoho/cmd"

func main() {
	cmd.Execute()
}

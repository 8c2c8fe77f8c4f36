package main

import "menu-builder/cmd"

func main() {
	cmd.Execute()
}

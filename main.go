package main

import "garden-assets/cmd"

func main() {
	cmd.Execute()
}

package main

import "catgedit/cmd/catgedit/cmd"

func main() {
	cmd.Execute()
}

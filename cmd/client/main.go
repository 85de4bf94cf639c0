package main

import "markskeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/stevetowers08/leadflow-sub006/cmd"

func main() {
	cmd.Execute()
}

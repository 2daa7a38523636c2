package main

import "github.com/dmitrijs2005/adventures/cmd/adventurectl/cmd"

func main() {
	cmd.Execute()
}

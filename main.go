package main

import "github.com/skeemlang/skeem/cmd"

func main() {
	cmd.Execute()
}

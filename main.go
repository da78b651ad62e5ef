package main

import "github.com/mumme74/atto-go/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/snoozie-v/dinner-sub000/internal/cli"

func main() {
	cli.Execute()
}

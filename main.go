package main

import "github.com/mouse-blink/textmig/cmd"

func main() {
	cmd.Execute()
}

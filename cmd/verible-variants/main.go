package main

import "github.com/yTakatsukasa/verible/cmd/verible-variants/cmd"

func main() {
	cmd.Execute()
}

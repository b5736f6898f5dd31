package main

import "vid2aud/cmd"

func main() {
	cmd.Execute()
}

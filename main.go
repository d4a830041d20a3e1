package main

import "bettero/cmd"

func main() {
	cmd.Execute()
}

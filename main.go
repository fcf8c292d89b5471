package main

import "klang/cmd"

func main() {
	cmd.Execute()
}

package main

import "follow-checker/cmd"

func main() {
	cmd.Execute()
}

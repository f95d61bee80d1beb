package main

import "filecredit/cmd"

func main() {
	cmd.Execute()
}

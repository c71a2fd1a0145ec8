package main

import "mini/internal/cmd"

func main() {
	cmd.Execute()
}

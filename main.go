package main

import "github.com/rybkr/rookhop/cmd"

func main() {
	cmd.Execute()
}

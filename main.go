package main

import "github.com/alexiusacademia/goscb/cmd"

func main() {
	cmd.Execute()
}

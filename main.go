package main

import "calc-suite/cli"

func main() {
	cli.Execute()
}

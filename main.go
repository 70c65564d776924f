package main

import "github.com/silkyway/silk/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/aalvaropc/romancalc/internal/cli"

func main() {
	cli.Execute()
}

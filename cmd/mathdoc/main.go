package main

import "github.com/tsawler/mathdoc/internal/cli"

func main() {
	cli.Execute()
}

package main

import "svw.info/sudoku-tutor/internal/cli"

func main() {
	cli.Execute()
}

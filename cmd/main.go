package main

import (
	"github.com/takak2166/notion2obsidian/internal/cli"
)

func main() {
	cli.Execute()
}

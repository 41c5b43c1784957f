package main

import "github.com/Belphemur/TorecSubtitles/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/surge-downloader/winres/cmd"

func main() {
	cmd.Execute()
}

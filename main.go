package main

import "github.com/gianaibodev/gdg-bacolod-community-platform-sub000/cmd"

func main() {
	cmd.Execute()
}

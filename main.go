package main

import "github.com/Rorical/NovaQuest/cmd"

func main() {
	cmd.Execute()
}

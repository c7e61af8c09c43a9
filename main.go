package main

import "github.com/CosmoTheDev/gdnotify/cmd"

func main() {
	cmd.Execute()
}

package main

import "flatacuties/cmd"

func main() {
	cmd.Execute()
}

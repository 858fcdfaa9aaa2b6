package main

import "service-locator/cmd"

func main() {
	cmd.Execute()
}

package main

import "servicehub.com/servicehub/cmd"

func main() {
	cmd.Execute()
}

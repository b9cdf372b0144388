package main

import "github.com/Manu343726/lacodec/cmd"

func main() {
	cmd.Execute()
}

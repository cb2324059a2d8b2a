package main

import "github.com/Beastly713/polysecret/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ensai-tp/attackdb/cmd/attackd/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ensai-tp/attackdb/cmd/attackctl/cmd"

func main() {
	cmd.Execute()
}

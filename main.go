package main

import "github.com/AndrejDratschuk/citadels-investor-portal-sub003/cmd"

func main() {
	cmd.Execute()
}

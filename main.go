package main

import "inventory-seeder/cmd"

func main() {
	cmd.Execute()
}

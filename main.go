package main

import "ledger-manager/cmd"

func main() {
	cmd.Execute()
}

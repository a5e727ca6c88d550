package main

import "github.com/trustbooks/go-trust-ledger/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}

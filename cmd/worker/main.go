package main

import "github.com/trustbooks/go-trust-ledger/cmd/worker/cmd"

func main() {
	cmd.Execute()
}

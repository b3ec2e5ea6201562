package main

import "github.com/api-sage/retail-ledger/src/internal/cli"

func main() {
	cli.Execute()
}

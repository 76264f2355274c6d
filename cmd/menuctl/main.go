// Command menuctl evaluates and checks menu filters against a catalog file offline.
package main

import (
	"os"

	"qr-menu/cmd/menuctl/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

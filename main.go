package main

import (
	"os"

	"github.com/portalbox-admin/portalbox-admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

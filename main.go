package main

import (
	"os"

	"github.com/pentagon-api/pentagon-api/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/cinefolio/cinefolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

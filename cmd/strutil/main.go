package main

import (
	"os"

	"github.com/jenkins-x/jx-strutil/cmd/strutil/app"
)

func main() {
	if err := app.Run(nil); err != nil {
		os.Exit(1)
	}
}

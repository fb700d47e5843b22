package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/getlawrence/typed-install/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var reported *cmd.ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

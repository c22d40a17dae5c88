// Command jpholiday prints Japanese national holidays and business days.
package main

import (
	"os"

	"github.com/rabitt1ove/jholiday/internal/cli"
	"github.com/rabitt1ove/jholiday/internal/log"
)

func main() {
	err := cli.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/pdfpress/pdfpress/pkg/cli"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err = cmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

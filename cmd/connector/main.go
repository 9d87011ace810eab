package main

import (
	"fmt"
	"os"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/app"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/config"
)

var exit = os.Exit

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exit(1)
		return
	}
	if err := app.New(cfg).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exit(1)
	}
}

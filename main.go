package main

import (
	"os"

	"github.com/pydantic/logfire-setup/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"github.com/ahoy-games/broadside/internal/cli"
)

func main() {
	cli.Execute()
}

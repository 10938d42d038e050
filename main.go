package main

import (
	"github.com/mj1618/ax-inspector/cmd"
	_ "github.com/mj1618/ax-inspector/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}

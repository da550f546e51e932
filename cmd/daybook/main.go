package main

import (
	"context"
	"os"
	"path"

	"daybook/internal/commands"
)

func main() {
	os.Exit(int(commands.Execute(context.Background(), path.Base(os.Args[0]), os.Args[1:], commands.Stdio())))
}

package main

import "github.com/salesflow-dev/salesflow/internal/cli"

func main() {
	cli.Execute()
}

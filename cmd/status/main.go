package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/aksdemo/server/internal/config"
	"codeberg.org/aksdemo/server/internal/probe"
)

func main() {
	flags := config.ParseStatusFlags(os.Args[1:])

	client := probe.NewClient(flags.Endpoint, flags.Timeout)
	report := client.Run(context.Background())

	fmt.Println(render(report))

	if !report.Healthy() {
		os.Exit(1)
	}
}

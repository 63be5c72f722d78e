package main

import "github.com/oriondesk-dev/oriondesk/internal/cmd"

func main() {
	cmd.Execute()
}

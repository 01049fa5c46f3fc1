// Command partshelf is the CLI for the partshelf inventory catalog.
package main

import "github.com/partshelf/partshelf/internal/cli"

func main() {
	cli.Execute()
}

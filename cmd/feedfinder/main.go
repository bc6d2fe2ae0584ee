// ABOUTME: Command line driver that lists candidate feeds for a page
// ABOUTME: Reads HTML from stdin by default, or fetches the page with --fetch

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Build information, overridden by ldflags
var (
	version = "development"
	commit  = "n/a"
)

func main() {
	cli.AppHelpTemplate = fmt.Sprintf(`%s
%s`, cli.AppHelpTemplate, `EXAMPLE:
   curl -s https://example.com/ | feedfinder https://example.com/
   feedfinder --fetch -f json https://www.youtube.com/channel/UCxxxx
`)

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

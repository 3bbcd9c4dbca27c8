// Command plugin-tab-manpage writes the plugin-tab man page to stdout, or to
// the file named by its only argument.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/laurenhamel/plugin-node-tab/internal/cli"
	"github.com/laurenhamel/plugin-node-tab/internal/version"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
)

func main() {
	logging.SetupLogger(0)

	var out io.Writer = os.Stdout
	if len(os.Args) > 1 {
		f, err := os.Create(os.Args[1])
		logging.Must(err, "could not create man page file")
		defer f.Close()
		out = f
	}

	header := &doc.GenManHeader{
		Title:   "PLUGIN-TAB",
		Section: "1",
		Source:  "plugin-tab " + version.Version,
		Manual:  "Pattern Lab tab plugin",
	}
	logging.Must(doc.GenMan(cli.NewRootCmd(), header, out), "could not generate man page")
}

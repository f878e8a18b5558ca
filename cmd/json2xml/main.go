// Program json2xml translates a simplified JSON document into XML.
package main

import (
	"os"

	"github.com/creachadair/jsonxml/cmd/json2xml/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

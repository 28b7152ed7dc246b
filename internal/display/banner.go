package display

import (
	"fmt"
	"os"

	"github.com/backmassage/vidfixture/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	fmt.Fprint(os.Stdout, term.Magenta)
	fmt.Fprint(os.Stdout, `       _     _  __ _      _
__   _(_) __| |/ _(_)_  _| |_ _   _ _ __ ___
\ \ / / |/ _`+"`"+` | |_| \ \/ / __| | | | '__/ _ \
 \ V /| | (_| |  _| |>  <| |_| |_| | | |  __/
  \_/ |_|\__,_|_| |_/_/\_\\__|\__,_|_|  \___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

// Command themegen writes the stylesheet compiled from a theme file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sefazor/pricing-web/pkg/theme"
)

func main() {
	in := flag.String("theme", "", "theme file (defaults to the built-in theme)")
	out := flag.String("out", "", "output file (defaults to stdout)")
	flag.Parse()

	th, err := theme.Load(*in)
	if err != nil {
		log.Fatal(err)
	}
	css, err := th.CSS()
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(css)
		return
	}
	if err := os.WriteFile(*out, []byte(css), 0o644); err != nil {
		log.Fatal(err)
	}
}

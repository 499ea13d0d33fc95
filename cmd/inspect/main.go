// Inspect is a low-level diagnostic tool that reports non-ASCII characters
// and NUL bytes in a spreadsheet export before ingestion, with the ASCII
// transliteration each occurrence would receive.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file>")
		os.Exit(1)
	}
	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s (%d bytes)\n\n", path, len(data))
	count := 0
	for lineNum, line := range strings.Split(string(data), "\n") {
		col := 0
		for _, r := range line {
			col++
			if r < utf8.RuneSelf && r != 0 {
				continue
			}
			count++
			switch {
			case r == 0:
				fmt.Printf("line %d col %d: NUL byte\n", lineNum+1, col)
			case r == utf8.RuneError:
				fmt.Printf("line %d col %d: invalid UTF-8 byte\n", lineNum+1, col)
			default:
				fmt.Printf("line %d col %d: %q (U+%04X) -> %q\n",
					lineNum+1, col, r, r, unidecode.Unidecode(string(r)))
			}
		}
	}
	if count == 0 {
		fmt.Println("clean: ASCII only")
	} else {
		fmt.Printf("\n%d non-ASCII occurrence(s)\n", count)
	}
}

// Command wfst inspects, verifies and transforms binary weighted automata and
// manages reference fixture directories.
//
//	wfst info a.fst b.fst
//	wfst verify --jobs 4 fixtures/*/*.fst
//	wfst map --mapper times --weight 1.5 -o out.fst in.fst
//	wfst fixtures export ./testdata
//	wfst fixtures check ./testdata fst_010
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wfst:", err)
		os.Exit(1)
	}
}

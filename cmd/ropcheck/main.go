// Command ropcheck extracts typed values from JSON or YAML documents.
//
//	ropcheck --at author.name --as string article.json other.yaml
//
// Every document is parsed with the same parser; one line is printed per
// document and the exit status is 1 when any of them failed.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
)

func main() {
	// Every parsing step mints a result id; buffer the random reads.
	uuid.EnableRandPool()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

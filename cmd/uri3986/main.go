// Command uri3986 parses, normalizes and resolves URI references and percent-encodes text.
//
//	uri3986 parse 'http://user@example.com:8080/a/../b?q=1#top'
//	uri3986 resolve 'http://a/b/c/d;p?q' '../g'
//	uri3986 --form encode 'a b&c'
package main

import (
	"context"
	"os"

	"github.com/ghettovoice/rfc3986/internal/log"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Def.Error("uri3986 failed", "error", err)
		os.Exit(1)
	}
}

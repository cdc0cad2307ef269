// mktoken mints a signed bearer token for manual testing against a dev
// instance. Production tokens come from the identity service; this only
// exists so curl has something to send.
//
//	mktoken -user 652f1a... -role admin -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/rollcall/internal/app/system/auth"
)

func main() {
	var (
		userID = flag.String("user", "", "user id (Mongo ObjectID hex) for the userId claim")
		role   = flag.String("role", "member", "role claim: admin or member")
		ttl    = flag.Duration("ttl", time.Hour, "token lifetime")
		secret = flag.String("secret", os.Getenv("ROLLCALL_JWT_SECRET"), "HS256 signing secret (default $ROLLCALL_JWT_SECRET)")
	)
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "mktoken: -user is required")
		os.Exit(2)
	}

	token, err := auth.Mint(*secret, *userID, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mktoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

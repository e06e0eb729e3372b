// Command hash_password prints ADMIN_PASSWORD_HASH and ADMIN_PASSWORD_SALT
// values for a password read from stdin.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fleetra/site/password"
)

func main() {
	fmt.Fprint(os.Stderr, "Admin password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("failed to read password: %v", err)
	}

	hash, salt, err := password.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\nADMIN_PASSWORD_SALT=%s\n", hash, salt)
}

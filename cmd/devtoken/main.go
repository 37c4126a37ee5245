package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tiny dev-only token minter.
//
// It signs an HS256 access token the api will accept with the same
// JWT_SECRET / JWT_ISSUER / JWT_AUDIENCE configuration, so local testing
// does not need a running auth provider.

func main() {
	sub := flag.String("sub", "", "subject (account id) to mint a token for")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" {
		log.Fatal("usage: devtoken -sub <account-id> [-ttl 1h]")
	}

	secret := os.Getenv("JWT_SECRET")
	issuer := getenv("JWT_ISSUER", "dev")
	audience := getenv("JWT_AUDIENCE", "registration-portal")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   *sub,
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

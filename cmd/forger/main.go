package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kargakis/ecbreak/pkg/attack"
	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/serialize"
	"github.com/kargakis/ecbreak/pkg/utils/random"
)

var (
	role = flag.String("role", "admin", "Role to forge into the profile")
	seed = flag.String("seed", "", "Seed for a reproducible key. Uses crypto/rand when empty.")
)

func main() {
	flag.Parse()

	src := random.New()
	if *seed != "" {
		src = random.NewSeeded([]byte(*seed))
	}
	p, err := oracle.NewProfile(random.Key(src))
	if err != nil {
		fmt.Printf("cannot set up profile oracle: %v\n", err)
		os.Exit(1)
	}

	b := attack.NewBreaker(p)
	b.Progress = os.Stdout
	forged, err := b.ForgeTrailingValue(len("user"), []byte(serialize.Sanitize(*role)))
	if err != nil {
		fmt.Printf("cannot forge profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Forged ciphertext: %s\n", serialize.Blocks(forged, parameters.BlockSize))

	record, err := p.Decrypt(forged)
	if err != nil {
		fmt.Printf("cannot decrypt forged profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Decrypted profile: %s\n", serialize.Encode(record))
	if got, _ := record.Get("role"); got != serialize.Sanitize(*role) {
		fmt.Printf("forged role is %q\n", got)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kargakis/ecbreak/pkg/attack"
	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/utils/fs"
	"github.com/kargakis/ecbreak/pkg/utils/random"
)

var (
	secretPath = flag.String("secret", "12.txt", "Path to the base64 encoded secret the oracle appends")
	prefixMax  = flag.Int("prefix-max", 0, "Max length of the random prefix the oracle prepends")
	seed       = flag.String("seed", "", "Seed for reproducible keys and prefixes. Uses crypto/rand when empty.")
	fsType     = flag.String("fs", fs.OsType, "Filesystem backend")
)

func main() {
	flag.Parse()

	fileSystem, err := fs.GetFs(*fsType)
	if err != nil {
		fmt.Printf("cannot set up filesystem: %v\n", err)
		os.Exit(1)
	}
	secret, err := fs.ReadBase64File(fileSystem, *secretPath)
	if err != nil {
		fmt.Printf("cannot read secret: %v\n", err)
		os.Exit(1)
	}

	src := random.New()
	if *seed != "" {
		src = random.NewSeeded([]byte(*seed))
	}
	o, err := oracle.NewECB(random.Key(src), random.Prefix(src, *prefixMax), secret)
	if err != nil {
		fmt.Printf("cannot set up oracle: %v\n", err)
		os.Exit(1)
	}

	b := attack.NewBreaker(o)
	b.Progress = os.Stdout
	start := time.Now()
	plain, err := b.Break()
	if err != nil {
		fmt.Printf("cannot break oracle: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Breaking: OK (%v)\n\n%s", time.Since(start), plain)
}

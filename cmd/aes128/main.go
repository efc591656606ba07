package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kargakis/ecbreak/pkg/codec"
	"github.com/kargakis/ecbreak/pkg/modes"
	"github.com/kargakis/ecbreak/pkg/utils/fs"
)

var (
	mode    = flag.String("mode", "ecb", "Block cipher mode, ecb or cbc")
	decrypt = flag.Bool("d", false, "Decrypt instead of encrypt")
	keyHex  = flag.String("key", "", "Hex encoded 16-byte key")
	ivHex   = flag.String("iv", "00000000000000000000000000000000", "Hex encoded 16-byte IV, cbc only")
	inPath  = flag.String("in", "", "Path to the input file")
	outPath = flag.String("out", "", "Path to the output file. Prints to stdout when empty.")
	b64     = flag.Bool("b64", false, "Ciphertext is base64 encoded")
	detect  = flag.Bool("detect", false, "Read hex ciphertexts, one per line, and report the one likely encrypted in ECB mode")
	fsType  = flag.String("fs", fs.OsType, "Filesystem backend")
)

func main() {
	flag.Parse()

	key, err := codec.DecodeBase16([]byte(*keyHex))
	if err != nil {
		fmt.Printf("cannot decode key: %v\n", err)
		os.Exit(1)
	}
	iv, err := codec.DecodeBase16([]byte(*ivHex))
	if err != nil {
		fmt.Printf("cannot decode iv: %v\n", err)
		os.Exit(1)
	}

	fileSystem, err := fs.GetFs(*fsType)
	if err != nil {
		fmt.Printf("cannot set up filesystem: %v\n", err)
		os.Exit(1)
	}

	if *detect {
		lines, err := fs.ReadBase16Lines(fileSystem, *inPath)
		if err != nil {
			fmt.Printf("cannot read ciphertexts: %v\n", err)
			os.Exit(1)
		}
		i := modes.MostLikelyECB(lines)
		if i < 0 {
			fmt.Println("No ciphertext repeats a block")
			return
		}
		fmt.Printf("Line %d has a block occurring %d times: %s\n", i+1, modes.MaxRepeats(lines[i]), codec.EncodeBase16(lines[i]))
		return
	}

	var in []byte
	if *decrypt && *b64 {
		in, err = fs.ReadBase64File(fileSystem, *inPath)
	} else {
		in, err = fs.ReadFile(fileSystem, *inPath)
	}
	if err != nil {
		fmt.Printf("cannot read input: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	switch {
	case *mode == "ecb" && *decrypt:
		out, err = modes.DecryptECBPad(in, key)
	case *mode == "ecb":
		out, err = modes.EncryptECBPad(in, key)
	case *mode == "cbc" && *decrypt:
		out, err = modes.DecryptCBCPad(in, key, iv)
	case *mode == "cbc":
		out, err = modes.EncryptCBCPad(in, key, iv)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Printf("cannot process input: %v\n", err)
		os.Exit(1)
	}

	encode := *b64 && !*decrypt
	if *outPath == "" {
		if encode {
			out = append(codec.EncodeBase64(out), '\n')
		}
		os.Stdout.Write(out)
		return
	}
	if err := fs.WriteFile(fileSystem, *outPath, out, encode); err != nil {
		fmt.Printf("cannot write output: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/abelbrown/vanity/internal/numeral"
)

func runEncode() {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		log.Fatal("usage: vanityctl encode <ordinal>")
	}
	n, ok := new(big.Int).SetString(fs.Arg(0), 10)
	if !ok {
		log.Fatalf("not a number: %q", fs.Arg(0))
	}

	s, err := numeral.Default().Encode(n)
	if err != nil {
		log.Fatalf("encode failed: %v", err)
	}
	fmt.Println(s)
}

func runDecode() {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		log.Fatal("usage: vanityctl decode <identifier>")
	}
	fmt.Println(numeral.Default().Decode(fs.Arg(0)))
}

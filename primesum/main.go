package main

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/spf13/pflag"

	primality "github.com/dv-extrarius/PrimalityTest"
)

// The code in this file is what allows the primality battery to be used as a
// program: it parses command-line flags and classifies each candidate given
// as an argument or piped in on stdin, one per line.

var (
	exitCode  int
	parseErrs int
)

func main() {
	pHelp := pflag.BoolP("help", "h", false, "prints this help menu")

	pQuiet := pflag.BoolP("quiet", "q", false, "prints ONLY classifications or breaking errors")

	pTime := pflag.BoolP("time", "t", false, "prints time taken to classify each candidate")

	pWitnesses := pflag.IntP("witnesses", "w", 0, "extra derived Miller-Rabin witnesses per candidate")

	pflag.CommandLine.SortFlags = false
	pflag.Parse()

	if *pHelp || (pflag.NArg() == 0 && !stdinHasData()) {
		fmt.Println("Decides primality of arbitrary-precision integers.\n\n" +
			"Usage:\n" +
			"  primesum [-q|-t] [-w <int>] -|NUMBER...\n\n" +
			"Numbers are decimal by default; 0x, 0o and 0b prefixes select the base.\n" +
			"`-` or piped input reads one candidate per line from STDIN.\n\n" +
			"Options:")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	if *pWitnesses < 0 {
		fmt.Fprintln(os.Stderr, "Extra witness count must not be negative.")
		os.Exit(22)
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if arg == "-" {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					classify(line, *pWitnesses, *pQuiet, *pTime)
				}
			}
			continue
		}
		classify(arg, *pWitnesses, *pQuiet, *pTime)
	}

	if !*pQuiet {
		switch {
		case parseErrs == 1:
			fmt.Println("1 input was not a valid integer.")
		case parseErrs > 1:
			fmt.Println(parseErrs, "inputs were not valid integers.")
		}
	}
	os.Exit(exitCode)
}

func classify(s string, witnesses int, quiet, timed bool) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		parseErrs++
		exitCode = 1
		if !quiet {
			fmt.Fprintf(os.Stderr, "not an integer: %q\n", s)
		}
		return
	}

	t := time.Now()
	var verdict string
	if primality.IsPrimeWithExtraWitnesses(n, witnesses) {
		verdict = "prime"
	} else {
		verdict = "composite"
	}
	delta := time.Since(t)

	switch {
	case quiet:
		fmt.Println(verdict)
	case timed:
		fmt.Printf("%s  %s, (%v)\n", verdict, s, delta)
	default:
		fmt.Printf("%s  %s\n", verdict, s)
	}
}

func stdinHasData() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice == 0
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/klauspost/compress/gzip"

	"github.com/tpool/compressor"
)

const description = "pcomp is a tool for compressing files concurrently."

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, description)
		fmt.Fprintln(os.Stderr, "\nUsage:")
		flag.PrintDefaults()
	}

	var concurrency int
	flag.IntVar(&concurrency, "concurrency", runtime.GOMAXPROCS(0), "allow up to n compression routines")

	var level int
	flag.IntVar(&level, "level", gzip.DefaultCompression, "gzip compression level")

	var suffix string
	flag.StringVar(&suffix, "suffix", ".gz", "suffix appended to compressed file names")

	flag.Parse()

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		return
	}

	cli := compressor.CLI{Paths: args, Concurrency: concurrency, Level: level, Suffix: suffix}

	err := cli.Compress()
	if err != nil {
		log.Fatal(err)
	}
}

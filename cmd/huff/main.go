// Command huff compresses and decompresses files with a static Huffman code.
//
// Usage:
//
//	huff [-v] [-verify] <input> <output>
//	huff -d [-v] <input> <output>
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	huffman "github.com/chronos-tachyon/hufftree"
)

var (
	flagDecompress = flag.Bool("d", false, "decompress instead of compress")
	flagVerbose    = flag.Bool("v", false, "log progress at debug level")
	flagVerify     = flag.Bool("verify", false, "after compressing, decompress the output and compare it to the input")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-d] [-v] [-verify] <input> <output>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, flag.Arg(0), flag.Arg(1)); err != nil {
		var fe *huffman.FormatError
		if errors.As(err, &fe) {
			log.WithField("magic", fmt.Sprintf("%#08x", fe.Magic)).Fatalf("%s is not a huff file", flag.Arg(0))
		}
		log.WithError(err).Fatal("huff failed")
	}
}

func run(log *logrus.Logger, input, output string) error {
	p := huffman.NewProcessor(&huffman.Options{Logger: log})

	if *flagDecompress {
		return p.DecompressFile(input, output)
	}

	if err := p.CompressFile(input, output); err != nil {
		return err
	}
	logSizes(log, input, output)

	if *flagVerify {
		return verify(log, p, input, output)
	}
	return nil
}

func logSizes(log *logrus.Logger, input, output string) {
	in, err := os.Stat(input)
	if err != nil {
		return
	}
	out, err := os.Stat(output)
	if err != nil {
		return
	}
	log.WithFields(logrus.Fields{
		"in":  in.Size(),
		"out": out.Size(),
	}).Info("compressed")
}

// verify decompresses the compressed file and checks that it hashes the same
// as the original.
func verify(log *logrus.Logger, p *huffman.Processor, input, compressed string) error {
	want, err := hashFile(input)
	if err != nil {
		return err
	}

	f, err := os.Open(compressed)
	if err != nil {
		return err
	}
	defer f.Close()

	h := xxhash.New()
	if err := p.Decompress(f, h); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if got := h.Sum64(); got != want {
		return fmt.Errorf("verify: round trip hashes to %016x, original hashes to %016x", got, want)
	}

	log.WithField("xxhash", fmt.Sprintf("%016x", want)).Info("verified")
	return nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

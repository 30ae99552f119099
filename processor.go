package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/sirupsen/logrus"
)

// Options configures a Processor.
type Options struct {
	// Logger receives Debug-level progress messages.  If nil, the logrus
	// standard logger is used.
	Logger logrus.FieldLogger
}

func checkOptions(o *Options) *Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Logger == nil {
		out.Logger = logrus.StandardLogger()
	}
	return &out
}

// Processor compresses and decompresses streams.  A Processor holds no state
// between calls, so one may be shared freely.
type Processor struct {
	log logrus.FieldLogger
}

// NewProcessor returns a Processor with the given options.  A nil o selects
// the defaults.
func NewProcessor(o *Options) *Processor {
	o = checkOptions(o)
	return &Processor{log: o.Logger}
}

// Compress reads in twice, once to count byte frequencies and once to encode
// it, and writes the compressed stream to out.  Between the passes in is
// rewound to the offset it had when Compress was called.
func (p *Processor) Compress(in io.ReadSeeker, out io.Writer) error {
	start, err := in.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("huffman: failed to locate input: %w", err)
	}

	freq, err := CountFrequencies(in)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{
		"bytes":   freq.Len(),
		"symbols": freq.NumPresent(),
	}).Debug("counted input")

	root := BuildTree(&freq)
	table := NewCodeTable(root)

	var payloadBits uint64
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		payloadBits += freq[symbol] * uint64(table.Encode(symbol).Size)
	}
	p.log.WithFields(logrus.Fields{
		"minSize":     table.MinSize(),
		"maxSize":     table.MaxSize(),
		"payloadBits": payloadBits,
	}).Debug("derived codes")

	bw := bitio.NewWriter(out)
	if err := bw.WriteBits(uint64(Magic), 32); err != nil {
		return fmt.Errorf("huffman: failed to write magic number: %w", err)
	}
	if err := WriteTree(bw, root); err != nil {
		return fmt.Errorf("huffman: failed to write tree header: %w", err)
	}

	if _, err := in.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("huffman: failed to rewind input: %w", err)
	}
	n, err := encodePayload(in, table, bw)
	if err != nil {
		return err
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("huffman: failed to flush output: %w", err)
	}

	p.log.WithField("bytes", n).Debug("compressed")
	return nil
}

// Decompress reads a stream written by Compress from in and writes the
// original bytes to out.
//
// A stream that does not start with Magic is rejected with a *FormatError
// before anything else is read.  A stream that ends before the EOF code
// fails with ErrMalformedStream; every byte decoded up to that point has
// already been written to out.
//
func (p *Processor) Decompress(in io.Reader, out io.Writer) error {
	br := bitio.NewReader(in)

	u, err := readBits(br, 32, "magic number")
	if err != nil {
		return err
	}
	if magic := uint32(u); magic != Magic {
		return &FormatError{Magic: magic}
	}

	root, err := ReadTree(br)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	n, err := decodePayload(br, root, bw)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("huffman: failed to flush output: %w", ferr)
	}
	if err != nil {
		p.log.WithError(err).WithField("bytes", n).Debug("decompression failed")
		return err
	}

	p.log.WithField("bytes", n).Debug("decompressed")
	return nil
}

var defaultProcessor = NewProcessor(nil)

// Compress compresses in to out with the default Processor.
func Compress(in io.ReadSeeker, out io.Writer) error {
	return defaultProcessor.Compress(in, out)
}

// Decompress decompresses in to out with the default Processor.
func Decompress(in io.Reader, out io.Writer) error {
	return defaultProcessor.Decompress(in, out)
}

// CompressBytes returns the compressed form of data.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the original form of data.  On error, it also
// returns whatever was decoded before the error.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := Decompress(bytes.NewReader(data), &buf)
	return buf.Bytes(), err
}

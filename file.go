package huffman

import (
	"fmt"
	"os"
)

// CompressFile compresses the file at srcPath into a new file at dstPath,
// replacing dstPath if it exists.
func (p *Processor) CompressFile(srcPath, dstPath string) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer closeFile(dst, &err)

	p.log.WithField("src", srcPath).WithField("dst", dstPath).Debug("compressing file")
	return p.Compress(src, dst)
}

// DecompressFile decompresses the file at srcPath into a new file at
// dstPath, replacing dstPath if it exists.  If decompression fails part way,
// dstPath is left holding the bytes decoded so far.
func (p *Processor) DecompressFile(srcPath, dstPath string) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer closeFile(dst, &err)

	p.log.WithField("src", srcPath).WithField("dst", dstPath).Debug("decompressing file")
	return p.Decompress(src, dst)
}

// CompressFile compresses a file with the default Processor.
func CompressFile(srcPath, dstPath string) error {
	return defaultProcessor.CompressFile(srcPath, dstPath)
}

// DecompressFile decompresses a file with the default Processor.
func DecompressFile(srcPath, dstPath string) error {
	return defaultProcessor.DecompressFile(srcPath, dstPath)
}

// closeFile closes f and, if *errp is still nil, stores the close error
// there.
func closeFile(f *os.File, errp *error) {
	if err := f.Close(); err != nil && *errp == nil {
		*errp = fmt.Errorf("huffman: failed to close %s: %w", f.Name(), err)
	}
}

// Command relicbench reports ALZ's compression ratio against LZ4 and
// klauspost's flate over a directory of extracted asset payloads,
// adapted from the teacher's internal/tool/bench registry-of-codecs
// shape down to the ratio-only comparison this repository needs.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/dsnet/golib/strconv"
	"github.com/klauspost/compress/flate"
	"github.com/pierrec/lz4/v4"

	"github.com/relicpack/relic/alz"
)

// codec mirrors arloliu-mebo's Codec interface, reduced to the
// compress side: a named compressor callers can treat uniformly
// regardless of the underlying algorithm.
type codec interface {
	Name() string
	Compress(src []byte) ([]byte, error)
}

type alzCodec struct{}

func (alzCodec) Name() string                       { return "alz" }
func (alzCodec) Compress(src []byte) ([]byte, error) { return alz.Compress(src), nil }

type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }
func (lz4Codec) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type flateCodec struct{}

func (flateCodec) Name() string { return "flate" }
func (flateCodec) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var codecs = []codec{alzCodec{}, lz4Codec{}, flateCodec{}}

func main() {
	flag.Parse()
	dir := flag.Arg(0)
	if dir == "" {
		log.Fatal("usage: relicbench <dir-of-payloads>")
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	sort.Strings(files)

	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "file\tsize\talz\tlz4\tflate")
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		rel, _ := filepath.Rel(dir, path)
		fmt.Fprintf(tw, "%s\t%s", rel, formatSize(len(data)))
		for _, c := range codecs {
			out, err := c.Compress(data)
			if err != nil {
				log.Fatalf("%s: %s: %v", c.Name(), rel, err)
			}
			fmt.Fprintf(tw, "\t%s (%.2fx)", formatSize(len(out)), ratio(len(data), len(out)))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func ratio(orig, compressed int) float64 {
	if compressed == 0 {
		return 0
	}
	return float64(orig) / float64(compressed)
}

// formatSize renders a byte count as a human-readable binary-prefixed
// string (e.g. "1.20Ki"), the same IEC-prefix formatting the teacher's
// benchmark tool uses for its size column.
func formatSize(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
}

// quill - JSON value engine CLI tool
//
// Usage:
//
//	quill fmt [--indent] [--sort-keys] [file]  Re-encode a JSON document
//	quill validate [file]                      Check a document decodes cleanly
//	quill stream [--indent] [--sort-keys] [file]
//	                                           Re-encode concatenated values, one per line
//	quill version                              Print version info
//
// If no file is given (or the file is "-"), reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Neumenon/quill/quill"
	"github.com/Neumenon/quill/stream"
)

const libVersion = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var opts quill.Options
	var files []string
	for _, a := range args {
		switch a {
		case "--indent":
			opts |= quill.OptIndent2
		case "--sort-keys":
			opts |= quill.OptSortKeys
		default:
			files = append(files, a)
		}
	}

	switch cmd {
	case "fmt":
		runFmt(openInput(files), opts)
	case "validate":
		runValidate(openInput(files))
	case "stream":
		runStream(openInput(files), opts)
	case "version":
		fmt.Printf("quill %s\n", libVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "quill: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func openInput(files []string) io.Reader {
	if len(files) == 0 || files[0] == "-" {
		return os.Stdin
	}
	f, err := os.Open(files[0])
	if err != nil {
		fatal("open file: %v", err)
	}
	return f
}

func runFmt(in io.Reader, opts quill.Options) {
	data, err := io.ReadAll(in)
	if err != nil {
		fatal("read input: %v", err)
	}

	v, err := quill.Decode(data)
	if err != nil {
		fatal("decode: %v", err)
	}

	out, err := quill.MarshalWithOptions(v, opts)
	if err != nil {
		fatal("encode: %v", err)
	}
	fmt.Println(string(out))
}

func runValidate(in io.Reader) {
	data, err := io.ReadAll(in)
	if err != nil {
		fatal("read input: %v", err)
	}

	if _, err := quill.Decode(data); err != nil {
		fatal("invalid: %v", err)
	}
	fmt.Println("ok")
}

func runStream(in io.Reader, opts quill.Options) {
	r := stream.NewReader(in)
	w := stream.NewWriter(os.Stdout, opts)

	for {
		v, err := r.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			fatal("stream: %v", err)
		}
		if err := w.Write(v); err != nil {
			fatal("stream: %v", err)
		}
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "quill: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `quill - JSON value engine

Usage:
  quill fmt [--indent] [--sort-keys] [file]   Re-encode a JSON document
  quill validate [file]                       Check a document decodes cleanly
  quill stream [--indent] [--sort-keys] [file]
                                              Re-encode concatenated values, one per line
  quill version                               Print version info

If no file is given, reads from stdin.`)
}

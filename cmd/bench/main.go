// bench - quill decode/encode throughput runner
//
// Decodes and re-encodes each input file repeatedly and reports
// MB/s per direction plus key-cache occupancy, so the effect of
// member-name dedup is visible on real corpora.
//
// Usage:
//
//	bench [-n iterations] file.json [file.json ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Neumenon/quill/quill"
)

func main() {
	iterations := flag.Int("n", 200, "iterations per file")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "bench: no input files")
		os.Exit(1)
	}

	fmt.Printf("%-24s %10s %12s %12s %12s\n", "file", "bytes", "decode MB/s", "interned", "encode MB/s")

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: skip %s: %v\n", path, err)
			continue
		}

		// Decode with a cold per-run cache so files do not pollute
		// each other's occupancy numbers.
		cache := quill.NewKeyCache(quill.DefaultKeyCacheCapacity)
		dec := quill.NewDecoder(cache)

		var v *quill.Value
		decStart := time.Now()
		for i := 0; i < *iterations; i++ {
			v, err = dec.Decode(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bench: %s: %v\n", path, err)
				os.Exit(1)
			}
		}
		decElapsed := time.Since(decStart)

		encStart := time.Now()
		var out []byte
		for i := 0; i < *iterations; i++ {
			out, err = quill.Marshal(v)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bench: %s: %v\n", path, err)
				os.Exit(1)
			}
		}
		encElapsed := time.Since(encStart)

		fmt.Printf("%-24s %10d %12.1f %12d %12.1f\n",
			path,
			len(data),
			throughput(len(data), *iterations, decElapsed),
			cache.Len(),
			throughput(len(out), *iterations, encElapsed),
		)
	}
}

func throughput(bytes, iterations int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	total := float64(bytes) * float64(iterations)
	return total / elapsed.Seconds() / (1 << 20)
}

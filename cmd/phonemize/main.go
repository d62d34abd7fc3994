// Command phonemize batch-converts Vietnamese transcript files into
// phoneme files. For every file under the given folder matching the
// suffix, it writes a sibling (or mirrored) file with the ".phn.txt"
// extension holding the phonetic transcription. Existing outputs are
// left untouched.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	vig2p "github.com/viet-nlp/vig2p"
)

func main() {
	suffix := flag.String("suffix", ".txt", "suffix of text files to process")
	outDir := flag.String("out", "", "output directory (default: alongside the input files)")
	rulesPath := flag.String("rules", "", "optional replacement-rule file applied after table rendering")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <folder>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	root := flag.Arg(0)

	var opts []vig2p.Option
	if *rulesPath != "" {
		rs, err := vig2p.LoadRulesFile(*rulesPath)
		if err != nil {
			log.Fatalf("failed to load rules: %v", err)
		}
		opts = append(opts, vig2p.WithRules(rs))
	}
	conv := vig2p.New(opts...)

	var done, skipped, failed int
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, *suffix) {
			return nil
		}

		outPath, err := outputPath(root, path, *suffix, *outDir)
		if err != nil {
			return err
		}
		if _, err := os.Stat(outPath); err == nil {
			skipped++
			return nil
		}

		if err := convertFile(conv, path, outPath); err != nil {
			log.Printf("error processing %s: %v", path, err)
			failed++
			return nil
		}
		done++
		return nil
	})
	if err != nil {
		log.Fatalf("walk %s: %v", root, err)
	}
	log.Printf("converted %d file(s), skipped %d, failed %d", done, skipped, failed)
}

// outputPath derives the ".phn.txt" path for an input file, mirroring
// the tree under outDir when one is given.
func outputPath(root, path, suffix, outDir string) (string, error) {
	phn := strings.TrimSuffix(filepath.Base(path), suffix) + ".phn.txt"
	if outDir == "" {
		return filepath.Join(filepath.Dir(path), phn), nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(outDir, filepath.Dir(rel), phn), nil
}

func convertFile(conv *vig2p.Converter, path, outPath string) error {
	graphs, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	phones := conv.Convert(vig2p.Sanitize(string(graphs)))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(phones+"\n"), 0o644)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/bpe_playground"
	"github.com/wbrown/bpe_playground/resources"
	"github.com/wbrown/bpe_playground/types"
)

func main() {
	inputUri := flag.String("input", "sample.txt",
		"corpus to learn merges from: embedded name, path or URL")
	configPath := flag.String("config", "",
		"tokenizer config JSON (defaults to the embedded config)")
	merges := flag.Int("merges", -1, "number of merges to learn")
	minFrequency := flag.Int("min_frequency", -1,
		"stop learning merges below this pair frequency, 0 disables")
	showVocab := flag.Bool("vocab", false, "print the learned vocabulary")
	outputFile := flag.String("output", "",
		"write the tokenized corpus ids to this file")
	out32 := flag.Bool("out32", false,
		"write ids as 32-bit instead of 16-bit")
	verbose := flag.Bool("verbose", false, "log every learned merge")
	flag.Parse()

	if *inputUri == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}

	settings, err := bpe_playground.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *merges >= 0 {
		settings.Options.Merges = *merges
	}
	if *minFrequency >= 0 {
		settings.Options.MinFrequency = *minFrequency
	}
	settings.Options.Verbose = *verbose

	tokenizer, err := bpe_playground.NewTokenizer(
		bpe_playground.StrategySubword, settings.Options)
	if err != nil {
		log.Fatal(err)
	}

	corpus, err := resources.ResolveCorpus(*inputUri)
	if err != nil {
		log.Fatal(err)
	}
	text := corpus.Text()
	log.Printf("read %s from %s", humanize.Bytes(corpus.Size()),
		corpus.Name)
	corpus.Cleanup()

	tokens, model := tokenizer.(*bpe_playground.SubwordTokenizer).
		TokenizeWithModel(text)

	for idx, merge := range model.Merges {
		count, _ := model.Vocab.Count(merge.Merged())
		fmt.Printf("%4d  %q + %q -> %q  freq=%d\n", idx+1, merge.Left,
			merge.Right, merge.Merged(), count)
	}
	if *showVocab {
		for _, symbol := range model.Vocab.Symbols() {
			count, _ := model.Vocab.Count(symbol)
			fmt.Printf("%q\t%d\n", symbol, count)
		}
	}
	log.Printf("%d distinct words -> %s tokens with %d merges",
		model.Words.Len(), humanize.Comma(int64(len(tokens)-2)),
		len(model.Merges))

	if *outputFile == "" {
		return
	}
	ids, vocab := bpe_playground.AssignTokenIds(tokens, settings.IdBase)
	written, writeErr := writeIds(*outputFile, ids, *out32)
	if writeErr != nil {
		log.Fatal(writeErr)
	}
	log.Printf("wrote %s (%d ids, %d distinct) to %s",
		humanize.Bytes(uint64(written)), len(ids), len(vocab),
		*outputFile)
}

// writeIds writes `ids` to `path` and reads the file back, so a short
// write or a width mismatch is caught before anyone consumes the output.
func writeIds(path string, ids types.TokenIds, out32 bool) (int, error) {
	bin, binErr := ids.ToBin(out32)
	if binErr != nil {
		return 0, binErr
	}
	if writeErr := os.WriteFile(path, *bin, 0644); writeErr != nil {
		return 0, writeErr
	}
	readBack, readErr := os.ReadFile(path)
	if readErr != nil {
		return 0, fmt.Errorf("error verifying %s: %w", path, readErr)
	}
	decoded, decodeErr := types.TokenIdsFromBin(readBack, out32)
	if decodeErr != nil {
		return 0, fmt.Errorf("error verifying %s: %w", path, decodeErr)
	}
	if !ids.Equal(decoded) {
		return 0, fmt.Errorf("%s holds %d ids that differ from the %d "+
			"written", path, len(decoded), len(ids))
	}
	return len(readBack), nil
}

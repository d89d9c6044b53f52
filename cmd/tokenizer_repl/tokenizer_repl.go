package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wbrown/bpe_playground"
	"github.com/wbrown/bpe_playground/resources"
	"github.com/wbrown/bpe_playground/types"
)

// A REPL for exploring how each strategy splits text.

func main() {
	configPath := flag.String("config", "",
		"tokenizer config JSON (defaults to the embedded config)")
	strategyOpt := flag.String("strategy", "",
		"strategy to use [word, character, subword, sentence]")
	merges := flag.Int("merges", -1,
		"number of BPE merges to learn (subword only)")
	minFrequency := flag.Int("min_frequency", -1,
		"stop learning merges below this pair frequency, 0 disables")
	lowerCase := flag.Bool("lowercase", false,
		"lowercase text before learning merges")
	corpusUri := flag.String("corpus", "",
		"train merges once on this corpus (embedded name, path or URL) "+
			"instead of on each line")
	verbose := flag.Bool("verbose", false, "log every learned merge")
	flag.Parse()

	settings, err := bpe_playground.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *strategyOpt != "" {
		if settings.Strategy, err = bpe_playground.ParseStrategy(
			*strategyOpt); err != nil {
			log.Fatal(err)
		}
	}
	if *merges >= 0 {
		settings.Options.Merges = *merges
	}
	if *minFrequency >= 0 {
		settings.Options.MinFrequency = *minFrequency
	}
	if *lowerCase {
		settings.Options.LowerCase = true
	}
	settings.Options.Verbose = *verbose
	if settings.Options.Merges > 50 {
		log.Printf("warning: %d merges may be slow on long input",
			settings.Options.Merges)
	}

	tokenizer, err := bpe_playground.NewTokenizer(settings.Strategy,
		settings.Options)
	if err != nil {
		log.Fatal(err)
	}

	var model *bpe_playground.Model
	subword, isSubword := tokenizer.(*bpe_playground.SubwordTokenizer)
	if *corpusUri != "" && isSubword {
		corpus, corpusErr := resources.ResolveCorpus(*corpusUri)
		if corpusErr != nil {
			log.Fatal(corpusErr)
		}
		model = bpe_playground.Train(corpus.Text(), settings.Options)
		corpus.Cleanup()
		log.Printf("trained %d merges on %s", len(model.Merges),
			*corpusUri)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err == io.EOF && len(input) == 0 {
			return
		} else if err != nil && err != io.EOF {
			log.Fatal(err)
		}
		// Remove trailing newline and replace \n with newline.
		input = strings.Replace(strings.TrimSuffix(input, "\n"),
			"\\n", "\n", -1)

		var tokens types.Tokens
		switch {
		case model != nil:
			tokens = subword.TokenizeWith(model, input)
		case isSubword:
			var lineModel *bpe_playground.Model
			tokens, lineModel = subword.TokenizeWithModel(input)
			fmt.Printf("merges: %v\n", lineModel.Merges)
		default:
			tokens = tokenizer.Tokenize(input)
		}
		ids, _ := bpe_playground.AssignTokenIds(tokens, settings.IdBase)
		fmt.Printf("token count: %d\n", len(tokens))
		for _, token := range tokens {
			fmt.Printf("|%s", token)
		}
		fmt.Printf("|\n%v\n", ids)
	}
}

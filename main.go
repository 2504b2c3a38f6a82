package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage(w *os.File) {
	fmt.Fprint(w, `wordsearch - generate and solve word search puzzles

Usage:
  wordsearch generate -w words.txt -r 10 -c 10 [--op puzzle.txt] [--ok key.txt]
  wordsearch generate --theme animals --count 12 -r 10 -c 10
  wordsearch solve -p puzzle.txt -w words.txt [-o results.json] [--key key.txt] [--color]
  wordsearch serve [-port 8080]

Run 'wordsearch <command> -h' for the full flag list.
`)
}

// loadOrDefaultConfig resolves the optional --config flag.
func loadOrDefaultConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	return LoadConfig(path)
}

// pick returns the flag value when set, the config default otherwise.
func pick(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var wordsPath string
	fs.StringVar(&wordsPath, "w", "", "path to the word list file")
	fs.StringVar(&wordsPath, "words", "", "path to the word list file")
	var rows, cols int
	fs.IntVar(&rows, "r", 0, "number of rows for the puzzle")
	fs.IntVar(&rows, "rows", 0, "number of rows for the puzzle")
	fs.IntVar(&cols, "c", 0, "number of columns for the puzzle")
	fs.IntVar(&cols, "cols", 0, "number of columns for the puzzle")
	outPuzzle := fs.String("op", "", "filename for the generated puzzle")
	outKey := fs.String("ok", "", "filename for the puzzle key")
	theme := fs.String("theme", "", "generate the word list with Gemini for this theme (needs GCP_PROJECT_ID)")
	count := fs.Int("count", 12, "number of words to request with --theme")
	seed := fs.Uint64("seed", 0, "random seed, 0 picks one")
	configPath := fs.String("config", "", "path to a TOML config file")
	fs.Parse(args)

	cfg, err := loadOrDefaultConfig(*configPath)
	if err != nil {
		return err
	}

	grid, err := NewGrid(rows, cols)
	if err != nil {
		return fmt.Errorf("%w (got %dx%d)", err, rows, cols)
	}

	var words []string
	switch {
	case wordsPath != "":
		words, err = LoadWordList(wordsPath)
		if err != nil {
			return err
		}
	case *theme != "":
		words, err = themedWordList(*theme, *count)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("provide a word list with -w or a theme with --theme")
	}

	log.Printf("starting puzzle generation (%dx%d) with %d words...", rows, cols, len(words))

	engine := NewEngine(grid)
	if *seed != 0 {
		engine = NewSeededEngine(grid, *seed)
	}
	engine.Alphabet = cfg.Alphabet
	engine.Budget = cfg.MaxAttempts

	placements, unplaced := engine.PlaceAll(words)
	for _, w := range unplaced {
		log.Printf("warning: could not find a place for word %q", w)
	}
	engine.Fill()

	key, err := RenderKey(grid.Rows, grid.Cols, placements)
	if err != nil {
		return err
	}

	puzzlePath := pick(*outPuzzle, cfg.OutputPuzzle)
	keyPath := pick(*outKey, cfg.OutputKey)
	if err := WriteGrid(puzzlePath, grid); err != nil {
		return err
	}
	if err := WriteGrid(keyPath, key); err != nil {
		return err
	}

	log.Printf("placed %d of %d words", len(placements), len(words))
	log.Printf("puzzle saved to %s", puzzlePath)
	log.Printf("key saved to %s", keyPath)
	return nil
}

func themedWordList(theme string, count int) ([]string, error) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID must be set to use --theme")
	}

	ctx := context.Background()
	gemini, err := NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
	if err != nil {
		return nil, err
	}
	defer gemini.Close()

	return gemini.GenerateWordList(ctx, theme, count)
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	var puzzlePath, wordsPath string
	fs.StringVar(&puzzlePath, "p", "", "path to the puzzle file to solve")
	fs.StringVar(&puzzlePath, "puzzle", "", "path to the puzzle file to solve")
	fs.StringVar(&wordsPath, "w", "", "path to the word list file")
	fs.StringVar(&wordsPath, "words", "", "path to the word list file")
	output := fs.String("o", "", "filename for the JSON solution output")
	keyPath := fs.String("key", "", "also write the answer key grid to this file")
	color := fs.Bool("color", false, "print the solved grid to stdout with found words highlighted")
	configPath := fs.String("config", "", "path to a TOML config file")
	fs.Parse(args)

	cfg, err := loadOrDefaultConfig(*configPath)
	if err != nil {
		return err
	}
	if puzzlePath == "" || wordsPath == "" {
		return fmt.Errorf("provide a puzzle with -p and a word list with -w")
	}

	grid, err := LoadGrid(puzzlePath)
	if err != nil {
		return err
	}
	words, err := LoadWordList(wordsPath)
	if err != nil {
		return err
	}

	log.Printf("starting puzzle solver for %s...", puzzlePath)

	results := NewEngine(grid).FindAll(words)

	var found []Placement
	for _, res := range results {
		if res.Found {
			found = append(found, res.Placement)
		}
	}

	outputPath := pick(*output, cfg.OutputSolution)
	if err := WriteSolution(outputPath, results); err != nil {
		return err
	}

	if *keyPath != "" {
		key, err := RenderKey(grid.Rows, grid.Cols, found)
		if err != nil {
			return err
		}
		if err := WriteGrid(*keyPath, key); err != nil {
			return err
		}
		log.Printf("answer key saved to %s", *keyPath)
	}

	if *color {
		fmt.Print(ColorGrid(grid, found))
	}

	log.Printf("found %d of %d words", len(found), len(results))
	log.Printf("solving complete, results saved to %s", outputPath)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", "", "port to listen on")
	configPath := fs.String("config", "", "path to a TOML config file")
	fs.Parse(args)

	cfg, err := loadOrDefaultConfig(*configPath)
	if err != nil {
		return err
	}

	listenPort := pick(*port, pick(os.Getenv("PORT"), cfg.Port))

	ctx := context.Background()
	var gemini *GeminiClient
	if projectID := os.Getenv("GCP_PROJECT_ID"); projectID != "" {
		gemini, err = NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
		if err != nil {
			return fmt.Errorf("init gemini: %w", err)
		}
		defer gemini.Close()
		log.Printf("gemini client ready (project: %s)", projectID)
	} else {
		log.Println("GCP_PROJECT_ID not set, themed word lists disabled")
	}

	srv := NewServer(NewStore(), gemini)

	log.Printf("server listening on http://localhost:%s", listenPort)
	return http.ListenAndServe(":"+listenPort, srv)
}

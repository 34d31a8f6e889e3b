package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/spf13/cobra"

	"deckgenie/config"
	"deckgenie/content"
	"deckgenie/deck"
	"deckgenie/export"
	"deckgenie/images"
	"deckgenie/logger"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate [content.json]",
		Short: "Generate a pitch deck from a content bundle",
		Long:  "Generate a PPTX deck from a JSON content bundle. The bundle can be a positional file argument or piped via stdin.",
		Run:   runGenerate,
	}

	cmd.Flags().StringP("output", "o", "", "Output file name (default: derived from the product name)")
	cmd.Flags().String("output-dir", "", "Output directory (default: config outputDir or current directory)")
	cmd.Flags().StringP("persona", "p", "", "Persona: business, technical, or executive")
	cmd.Flags().String("order", "", "Comma-separated custom slide order")
	cmd.Flags().Bool("placeholders", false, "Render placeholder images instead of fetching stock photos")
	cmd.Flags().Bool("fresh", false, "Treat the bundle as freshly generated content (fetches new images)")
	cmd.Flags().Bool("pdf", false, "Also write a PDF outline next to the deck")
	cmd.Flags().Bool("no-cache", false, "Skip the deck result cache")
	cmd.Flags().String("team", "", "Roster JSON file; overrides the stored team config for this run")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	personaFlag, _ := cmd.Flags().GetString("persona")
	orderFlag, _ := cmd.Flags().GetString("order")
	placeholders, _ := cmd.Flags().GetBool("placeholders")
	fresh, _ := cmd.Flags().GetBool("fresh")
	withPDF, _ := cmd.Flags().GetBool("pdf")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	teamFile, _ := cmd.Flags().GetString("team")

	bundle, err := readBundle(args)
	if err != nil {
		exitErr("read content", err)
	}

	cfg := loadConfig()

	lg := logger.NewLogger()
	if cfg.DetailedLog {
		if err := lg.Init(filepath.Join(dataDir(cfg), "logs")); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	}
	defer lg.Close()
	log := lg.Callback()

	store, err := openStore(cfg)
	if err != nil {
		exitErr("open session store", err)
	}
	defer store.Close()

	fetcher := buildFetcher(cmd, cfg, placeholders, log)
	manager := images.NewManager(fetcher, store, log)
	generator := deck.NewGenerator(store, manager, cfg.CacheResults && !noCache, log)

	opts := deck.GenerateOptions{
		Persona:      firstNonEmpty(personaFlag, cfg.Persona),
		Filename:     output,
		FreshContent: fresh,
	}
	if orderFlag != "" {
		for _, s := range strings.Split(orderFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				opts.CustomOrder = append(opts.CustomOrder, s)
			}
		}
	}
	if teamFile != "" {
		raw, err := os.ReadFile(teamFile)
		if err != nil {
			exitErr("read roster", err)
		}
		var members []content.TeamMember
		if err := json.Unmarshal(raw, &members); err != nil {
			exitErr("parse roster", err)
		}
		opts.Team = &deck.TeamConfig{IncludeTeamSlide: true, TeamMembers: members}
	}

	res, err := generator.Generate(cmd.Context(), bundle, opts)
	if err != nil {
		exitErr("generate", err)
	}

	dir := firstNonEmpty(outputDir, cfg.OutputDir, ".")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		exitErr("create output directory", err)
	}
	path := filepath.Join(dir, res.Filename)
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		exitErr("write deck", err)
	}

	if res.FromCache {
		fmt.Printf("Reused cached deck: %s\n", path)
	} else {
		fmt.Printf("Generated %s (%d slides)\n", path, len(res.SlideOrder))
	}

	if withPDF {
		writeOutline(bundle, res, opts.Persona, path)
	}
}

// buildFetcher wires the image pipeline: Unsplash source plus an optional
// LLM query generator, degrading to placeholders when keys are missing.
func buildFetcher(cmd *cobra.Command, cfg config.Config, placeholders bool, log func(string)) *images.Fetcher {
	var source images.ImageSource
	if !placeholders && !cfg.Images.UsePlaceholders {
		if cfg.Images.UnsplashAccessKey == "" {
			fmt.Fprintln(os.Stderr, "warning: no Unsplash access key configured, using placeholder images")
		} else {
			source = images.NewUnsplashClient(cfg.Images.UnsplashAccessKey, log)
		}
	}

	var queries *images.QueryGenerator
	if source != nil && cfg.LLM.APIKey != "" {
		chatModel, err := buildChatModel(cmd, cfg.LLM)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: LLM unavailable, using keyword queries: %v\n", err)
		} else {
			queries = images.NewQueryGenerator(chatModel, log)
		}
	}

	usePlaceholders := placeholders || cfg.Images.UsePlaceholders || source == nil
	return images.NewFetcher(source, queries, usePlaceholders, cfg.Images.FetchRetries, log)
}

func buildChatModel(cmd *cobra.Command, cfg config.LLMConfig) (model.ChatModel, error) {
	mc := &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.ModelName,
	}
	if cfg.MaxTokens > 0 {
		maxTokens := cfg.MaxTokens
		mc.MaxTokens = &maxTokens
	}
	return openai.NewChatModel(cmd.Context(), mc)
}

func writeOutline(bundle *content.Bundle, res *deck.Result, personaName, deckPath string) {
	order := res.SlideOrder
	if len(order) == 0 {
		// Cached decks carry no order; outline the bundle's slides instead.
		for _, st := range []string{
			content.SlideTitle, content.SlideProblem, content.SlideSolution,
			content.SlideFeatures, content.SlideAdvantage, content.SlideAudience,
			content.SlideMarket, content.SlideRoadmap, content.SlideTeam, content.SlideCTA,
		} {
			if bundle.Has(st) {
				order = append(order, st)
			}
		}
	}

	data, err := export.NewOutlineService().ExportOutline(bundle, order, personaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: PDF outline failed: %v\n", err)
		return
	}
	pdfPath := strings.TrimSuffix(deckPath, filepath.Ext(deckPath)) + ".pdf"
	if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "warning: write PDF outline: %v\n", err)
		return
	}
	fmt.Printf("Wrote outline %s\n", pdfPath)
}

func readBundle(args []string) (*content.Bundle, error) {
	var raw []byte
	var err error
	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, fmt.Errorf("content bundle required (file argument or stdin)")
		}
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	var bundle content.Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("invalid content bundle: %w", err)
	}
	return &bundle, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

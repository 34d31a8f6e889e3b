package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Session-store key prefixes owned by the caches.
const (
	imageCachePrefix = "original_images_cache/"
	deckCachePrefix  = "ppt_cache/"
)

func init() {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clear the image and deck caches",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show cache entry counts",
		Run:   runCacheStatus,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached images and decks",
		Run:   runCacheClear,
	}
	clearCmd.Flags().Bool("images", false, "Clear only the image cache")
	clearCmd.Flags().Bool("decks", false, "Clear only the deck cache")

	cacheCmd.AddCommand(statusCmd, clearCmd)
	RootCmd.AddCommand(cacheCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) {
	store, err := openStore(loadConfig())
	if err != nil {
		exitErr("open session store", err)
	}
	defer store.Close()

	for _, c := range []struct{ label, prefix string }{
		{"images", imageCachePrefix},
		{"decks", deckCachePrefix},
	} {
		keys, err := store.Keys(c.prefix)
		if err != nil {
			exitErr("list cache keys", err)
		}
		fmt.Printf("%s: %d cached\n", c.label, len(keys))
	}
}

func runCacheClear(cmd *cobra.Command, args []string) {
	imagesOnly, _ := cmd.Flags().GetBool("images")
	decksOnly, _ := cmd.Flags().GetBool("decks")

	var prefixes []string
	switch {
	case imagesOnly && !decksOnly:
		prefixes = []string{imageCachePrefix}
	case decksOnly && !imagesOnly:
		prefixes = []string{deckCachePrefix}
	default:
		prefixes = []string{imageCachePrefix, deckCachePrefix}
	}

	store, err := openStore(loadConfig())
	if err != nil {
		exitErr("open session store", err)
	}
	defer store.Close()

	total := 0
	for _, prefix := range prefixes {
		keys, err := store.Keys(prefix)
		if err != nil {
			exitErr("list cache keys", err)
		}
		for _, key := range keys {
			if err := store.Delete(key); err != nil {
				exitErr("delete cache entry", err)
			}
			total++
		}
	}
	fmt.Printf("Removed %d cache entries\n", total)
}

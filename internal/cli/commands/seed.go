package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brightline-labs/callboard/internal/source"
)

// SeedOptions holds options for the seed command.
type SeedOptions struct {
	Collection string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed <file.json>...",
		Short: "Load JSON documents into the database",
		Long: `Load JSON documents into the synced document database.

Each file holds a JSON array of objects. The target collection is the
file name without extension, so kixie_calls.json loads into the
kixie_calls collection. Use --collection to override.

Documents with an "id" field keep it as their document ID; documents
without one get a generated ID. Reloading a file replaces documents
with matching IDs.`,
		Example: `  # Load call logs and contacts from export files
  callboard seed kixie_calls.json ghl_contacts.json

  # Load a file into an explicit collection
  callboard seed export.json --collection ghl_contacts`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Collection, "collection", "", "Target collection (default: file name)")

	return cmd
}

func runSeed(cmd *cobra.Command, files []string, opts *SeedOptions) error {
	cfg := getConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	total := 0

	for _, path := range files {
		collection := opts.Collection
		if collection == "" {
			collection = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		records, err := readSeedFile(path)
		if err != nil {
			return err
		}

		if err := store.PutBatch(ctx, collection, records); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d documents into %s\n", len(records), collection)
		total += len(records)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done: %d documents\n", total)
	return nil
}

// readSeedFile parses a JSON array of objects into records.
func readSeedFile(path string) ([]source.Record, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%s is not a JSON array of objects: %w", path, err)
	}

	records := make([]source.Record, 0, len(docs))
	for _, doc := range docs {
		rec := source.Record{Fields: doc}
		if id, ok := doc["id"].(string); ok {
			rec.ID = id
		}
		records = append(records, rec)
	}
	return records, nil
}

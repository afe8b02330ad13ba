package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ObjectGetter fetches a raw object by key. Satisfied by the blob store.
type ObjectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// Logger is the minimal logging surface the loader needs.
type Logger interface {
	Printf(format string, v ...any)
}

// LoadOptions selects the catalog source. An S3 key with a configured
// store wins over a local path; with neither the bundled seed is used.
type LoadOptions struct {
	Path   string
	S3Key  string
	Blob   ObjectGetter
	Logger Logger
}

// Load reads the food catalog from the configured source, fills in
// missing ids and categories, and validates every entry.
func Load(ctx context.Context, opts LoadOptions) ([]Food, error) {
	var (
		raw    []byte
		source string
		err    error
	)

	switch {
	case opts.S3Key != "" && opts.Blob != nil:
		source = "s3:" + opts.S3Key
		raw, err = opts.Blob.GetObject(ctx, opts.S3Key)
		if err != nil {
			return nil, fmt.Errorf("load catalog from %s: %w", source, err)
		}

	case opts.Path != "":
		source = opts.Path
		raw, err = os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog from %s: %w", source, err)
		}

	default:
		foods := SeedFoods()
		logf(opts.Logger, "INFO catalog: source=bundled foods=%d", len(foods))
		return foods, nil
	}

	foods, err := parseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog from %s: %w", source, err)
	}

	logf(opts.Logger, "INFO catalog: source=%s foods=%d", source, len(foods))
	return foods, nil
}

func parseCatalog(raw []byte) ([]Food, error) {
	var foods []Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	for i := range foods {
		if foods[i].ID == uuid.Nil {
			foods[i].ID = uuid.New()
		}
		foods[i] = MigrateCategory(foods[i])
		if err := foods[i].Validate(); err != nil {
			return nil, fmt.Errorf("food %q: %w", foods[i].Name, err)
		}
	}
	return foods, nil
}

func logf(logger Logger, format string, v ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, v...)
}

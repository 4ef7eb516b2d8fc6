package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marek-kar/apic-faults/pkg/model"
)

// Collect downloads and parses the fault catalogue.
func Collect(ctx context.Context, f *Fetcher, opts Options) (*model.Snapshot, error) {
	body, err := f.Fetch(ctx, opts.URL)
	if err != nil {
		return nil, err
	}

	faults, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	f.logger.Info("parsed fault catalogue", zap.String("url", opts.URL), zap.Int("faults", len(faults)))

	return model.NewSnapshot(opts.URL, faults), nil
}

// ErrDuplicateCode is returned when a snapshot lists the same fault code twice.
var ErrDuplicateCode = errors.New("duplicate fault code in snapshot")

// Load reads a snapshot previously written by Save.
func Load(path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", path)
	}
	if snap.SchemaVersion != model.SchemaVersion {
		return nil, errors.Errorf("snapshot %s has schema %q, want %q", path, snap.SchemaVersion, model.SchemaVersion)
	}
	seen := make(map[string]bool, len(snap.Faults))
	for _, f := range snap.Faults {
		if seen[f.Code] {
			return nil, errors.Wrapf(ErrDuplicateCode, "snapshot %s: %s", path, f.Code)
		}
		seen[f.Code] = true
	}
	return &snap, nil
}

func Save(path string, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return nil
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

// FileUpdateSource reads remote updates from a JSON file holding an
// updates envelope.
type FileUpdateSource struct {
	path string

	logger *logger.Logger
}

func NewFileUpdateSource(path string, logger *logger.Logger) *FileUpdateSource {
	return &FileUpdateSource{path: path, logger: logger}
}

// FetchUpdates implements [UpdateSource]. The file is read on every call.
func (f *FileUpdateSource) FetchUpdates(ctx context.Context) ([]models.RemoteUpdate, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingUpdates, err)
	}

	var envelope models.UpdatesEnvelope
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingUpdates, f.path, err)
	}

	f.logger.Debug().
		Str("func", "*FileUpdateSource.FetchUpdates").
		Str("path", f.path).
		Int("updates", len(envelope.Updates)).
		Msg("read remote updates")
	return envelope.Updates, nil
}

// NewUpdateSource picks the source configured in adapterCfg: the updates
// file when set, the updates URL otherwise. It returns nil when neither is
// configured.
func NewUpdateSource(adapterCfg config.Adapter, logger *logger.Logger) (UpdateSource, error) {
	switch {
	case adapterCfg.UpdatesFile != "":
		return NewFileUpdateSource(adapterCfg.UpdatesFile, logger), nil
	case adapterCfg.UpdatesURL != "":
		return NewHTTPUpdateSource(adapterCfg, logger)
	default:
		return nil, nil
	}
}

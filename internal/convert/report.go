// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2word/pkg/types"
)

// reportName is the batch report file written into the destination folder.
const reportName = "conversion-report.yaml"

// WriteReport writes a YAML record of a completed batch into the destination
// folder: per-file outcomes plus counts and timing.
func WriteReport(cfg types.Config, result BatchResult, started, finished time.Time) error {
	report := types.BatchReport{
		SourceFolder:      cfg.SourceFolder,
		DestinationFolder: cfg.DestinationFolder,
		StartedAt:         started.UTC(),
		FinishedAt:        finished.UTC(),
		Converted:         result.Converted,
		Failed:            result.Failed,
		Files:             result.Files,
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding batch report: %w", err)
	}

	path := filepath.Join(cfg.DestinationFolder, reportName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing batch report: %w", err)
	}
	return nil
}

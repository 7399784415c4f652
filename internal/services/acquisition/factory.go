package acquisition

import (
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/interfaces"
)

// NewSource selects a PropertySource implementation from configuration
func NewSource(config *common.AcquisitionConfig, logger arbor.ILogger) (interfaces.PropertySource, error) {
	switch strings.ToLower(config.Source) {
	case "", "sample":
		return NewSampleSource(logger), nil
	case "csv":
		if config.CSVPath == "" {
			return nil, fmt.Errorf("csv acquisition source requires csv_path")
		}
		return NewCSVSource(config.CSVPath, logger), nil
	case "http":
		if config.Endpoint == "" {
			return nil, fmt.Errorf("http acquisition source requires endpoint")
		}
		return NewHTTPSource(config, logger), nil
	default:
		return nil, fmt.Errorf("unknown acquisition source %q (expected sample, csv, or http)", config.Source)
	}
}

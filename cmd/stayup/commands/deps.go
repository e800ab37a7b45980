package commands

import (
	"fmt"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/internal/external/moneycontrol"
	"github.com/quantnse/stayup/internal/external/nse"
	"github.com/quantnse/stayup/internal/external/yahoo"
	"github.com/quantnse/stayup/internal/pipeline"
	"github.com/quantnse/stayup/pkg/config"
	"github.com/quantnse/stayup/pkg/logger"
)

// loadDeps builds the config, logger and scan pipeline shared by all
// commands, honoring the global flags.
func loadDeps() (*config.Config, *logger.Logger, *pipeline.Pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	if sourceFlag != "" {
		cfg.Scan.Source = sourceFlag
	}
	if verboseFlag {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	var snapshots contracts.SnapshotSource
	switch cfg.Scan.Source {
	case "moneycontrol":
		snapshots = moneycontrol.NewClient(cfg, log)
	case "nse":
		snapshots = nse.NewClient(cfg, log)
	default:
		return nil, nil, nil, fmt.Errorf("unknown snapshot source %q", cfg.Scan.Source)
	}

	history := yahoo.NewClient(cfg, log)
	p := pipeline.New(snapshots, history, log, cfg.Scan.UniverseLimit)

	return cfg, log, p, nil
}

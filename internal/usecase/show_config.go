package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	IgnoreGlobal  bool // Skip the global config file
	IgnoreDataDir bool // Skip the data-dir config file
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective     *domain.Config    // Merged configuration
	GlobalConfig  domain.ConfigInfo // Global config file info
	DataDirConfig domain.ConfigInfo // Data-dir config file info
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information and the merged result.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	out := &ShowConfigOutput{
		GlobalConfig:  uc.configManager.GetGlobalConfigInfo(),
		DataDirConfig: uc.configManager.GetDataDirConfigInfo(),
	}
	if uc.configLoader != nil {
		cfg, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
			IgnoreGlobal:  in.IgnoreGlobal,
			IgnoreDataDir: in.IgnoreDataDir,
		})
		if err != nil {
			return nil, err
		}
		out.Effective = cfg
	}
	return out, nil
}

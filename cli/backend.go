package cli

import (
	"fmt"

	"github.com/viert/awxinv/backend/httpapi"
	"github.com/viert/awxinv/backend/localfile"
	"github.com/viert/awxinv/backend/localini"
	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/inventory"
)

func createBackend(cfg *config.Config) (inventory.Backend, error) {
	switch cfg.BackendCfg.Type {
	case config.BTIni:
		be, err := localini.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("Error creating local ini backend: %s", err)
		}
		return be, nil
	case config.BTFile:
		be, err := localfile.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("Error creating local file backend: %s", err)
		}
		return be, nil
	case config.BTHTTP:
		be, err := httpapi.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("Error creating http backend: %s", err)
		}
		return be, nil
	default:
		return nil, fmt.Errorf("Backend type %s is not implemented yet", cfg.BackendCfg.TypeString)
	}
}

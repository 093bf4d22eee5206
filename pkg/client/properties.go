package client

import (
	"context"
	"fmt"

	"github.com/sdwanops/vcoctl/pkg/types"
)

const getSystemPropertiesPath = "systemProperty/getSystemProperties"

// GetSystemProperties returns all portal system properties.
func (c *Client) GetSystemProperties(ctx context.Context) ([]types.SystemPropertyRecord, error) {
	var result []types.SystemPropertyRecord
	if err := c.post(ctx, getSystemPropertiesPath, nil, &result); err != nil {
		return nil, fmt.Errorf("getting system properties: %w", err)
	}
	return result, nil
}

// GetSystemPropertiesMap returns all portal system properties keyed by
// property name.
func (c *Client) GetSystemPropertiesMap(ctx context.Context) (map[string]types.SystemPropertyRecord, error) {
	props, err := c.GetSystemProperties(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]types.SystemPropertyRecord, len(props))
	for _, p := range props {
		byName[p.Name] = p
	}
	return byName, nil
}

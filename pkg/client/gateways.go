package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sdwanops/vcoctl/pkg/types"
)

const (
	getNetworkGatewaysPath      = "network/getNetworkGateways"
	getGatewayStatusMetricsPath = "metrics/getGatewayStatusMetrics"
)

// GetNetworkGateways returns every gateway on the network.
func (c *Client) GetNetworkGateways(ctx context.Context) ([]types.Gateway, error) {
	var result []types.Gateway
	if err := c.post(ctx, getNetworkGatewaysPath, nil, &result); err != nil {
		return nil, fmt.Errorf("getting network gateways: %w", err)
	}
	return result, nil
}

// GetGatewayStatusMetrics returns the recorded status metrics for one
// gateway over an interval. A nil end leaves the interval open. The metric
// payload shape varies per metric, so the result is raw JSON for the caller
// to interpret.
func (c *Client) GetGatewayStatusMetrics(
	ctx context.Context,
	gatewayID int,
	start types.DateTime,
	end *types.DateTime,
	metrics ...types.GatewayMetric,
) (json.RawMessage, error) {
	req := types.GatewayStatusMetricsRequest{
		GatewayID: gatewayID,
		Interval:  types.Interval{Start: start, End: end},
		Metrics:   types.NewGatewayMetrics(metrics...),
	}

	var result json.RawMessage
	if err := c.post(ctx, getGatewayStatusMetricsPath, req, &result); err != nil {
		return nil, fmt.Errorf("getting status metrics for gateway %d: %w", gatewayID, err)
	}
	return result, nil
}

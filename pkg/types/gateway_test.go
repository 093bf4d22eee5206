package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayStatusMetricsRequest_RoundTrip(t *testing.T) {
	t.Parallel()

	start, err := ParseRFC3339("2023-01-02T03:04:05+05:30")
	require.NoError(t, err)

	req := GatewayStatusMetricsRequest{
		GatewayID: 1,
		Interval:  Interval{Start: start},
		Metrics:   NewGatewayMetrics(GatewayMetricTunnelCount, GatewayMetricFlowCount, GatewayMetricTunnelCount),
	}

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"gatewayId": 1,
		"interval": {"start": "2023-01-01T21:34:05Z"},
		"metrics": ["tunnelCount", "flowCount"]
	}`, string(out))

	var back GatewayStatusMetricsRequest
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, req.Metrics, back.Metrics)
	assert.True(t, back.Interval.Start.Equal(start))
	assert.Nil(t, back.Interval.End)
}

func TestGatewayMetrics_Dedup(t *testing.T) {
	t.Parallel()

	m := NewGatewayMetrics(GatewayMetricCPUPct, GatewayMetricMemoryPct, GatewayMetricCPUPct)
	assert.Len(t, m, 2)
	assert.True(t, m.Contains(GatewayMetricCPUPct))
	assert.False(t, m.Contains(GatewayMetricFlowCount))
}

// Trimmed from a real getNetworkGateways response: note the epoch integer
// timestamps next to RFC3339 strings and sentinel strings, and the 0/1
// booleans. This is the mix the value types exist to absorb.
const gatewayFixture = `{
	"id": 80,
	"name": "vcg-example-1",
	"description": null,
	"dnsName": "vcg-example-1.example.net",
	"created": 1686489749,
	"logicalId": "gateway01234567-89ab-cdef-0123-456789abcdef",
	"networkId": 1,
	"enterpriseProxyId": null,
	"siteId": 100,
	"softwareVersion": "5.2.0.0",
	"buildNumber": "R5200-20230610",
	"deviceId": "01234567-89ab-cdef-0123-456789abcdef",
	"ipAddress": "192.0.2.17",
	"ipV6Address": "",
	"lastContact": "2023-06-11T13:22:29Z",
	"modified": "2023-06-11T13:22:29.000Z",
	"serviceUpSince": 1686489000,
	"systemUpSince": "0000-00-00 00:00:00",
	"activationKey": "AAAA-BBBB-CCCC-DDDD",
	"activationState": "ACTIVATED",
	"activationTime": "2023-01-02T03:04:05+05:30",
	"gatewayState": "CONNECTED",
	"bastionState": "UNCONFIGURED",
	"serviceState": "IN_SERVICE",
	"utilization": 0.25,
	"utilizationDetail": {"load": 0.25, "overall": 0.25, "cpu": 0.1, "memory": 0.4},
	"endpointPkiMode": "CERTIFICATE_DISABLED",
	"connectedEdges": 12,
	"connectedEdgeList": null,
	"handOffDetail": null,
	"alertsEnabled": 1,
	"ipsecGatewayDetail": null,
	"isLoadBalanced": 0,
	"privateIpAddress": null
}`

func TestGateway_DecodeFixture(t *testing.T) {
	t.Parallel()

	var gw Gateway
	require.NoError(t, json.Unmarshal([]byte(gatewayFixture), &gw))

	assert.Equal(t, 80, gw.ID)
	assert.Equal(t, "gateway", gw.LogicalID.Prefix())

	created, err := gw.Created.RFC3339()
	require.NoError(t, err)
	assert.Equal(t, "2023-06-11T13:22:29Z", created)

	assert.True(t, gw.SystemUpSince.IsNever())
	assert.True(t, gw.Modified.Equal(gw.LastContact))

	require.NotNil(t, gw.IPAddress)
	assert.Equal(t, "192.0.2.17", gw.IPAddress.WireString())
	require.NotNil(t, gw.IPv6Address)
	assert.True(t, gw.IPv6Address.IsUndefined())
	assert.Nil(t, gw.PrivateIPAddress)

	require.NotNil(t, gw.AlertsEnabled)
	assert.True(t, gw.AlertsEnabled.Bool())
	assert.False(t, gw.IsLoadBalanced.Bool())

	assert.Equal(t, GatewayStateConnected, gw.GatewayState)
	assert.Equal(t, ActivationStateActivated, gw.ActivationState)
}

func TestGateway_DecodeFailsFast(t *testing.T) {
	t.Parallel()

	// One bad field fails the whole document: the wire format has no way to
	// skip a corrupt value.
	bad := []byte(`{"id": 80, "isLoadBalanced": 3}`)
	var gw Gateway
	err := json.Unmarshal(bad, &gw)
	var invalid *InvalidTinyIntError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, int64(3), invalid.Value)
}

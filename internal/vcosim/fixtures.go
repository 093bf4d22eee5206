package vcosim

import (
	"encoding/json"
	"fmt"

	"github.com/sdwanops/vcoctl/pkg/types"
)

func strptr(s string) *string { return &s }

func mustStamp(s string) types.DateTime {
	d, err := types.ParseRFC3339(s)
	if err != nil {
		panic(fmt.Sprintf("vcosim fixture: %v", err))
	}
	return d
}

func fixtureProperties() []types.SystemPropertyRecord {
	return []types.SystemPropertyRecord{
		{
			SystemProperty: types.SystemProperty{
				ID:           1,
				Name:         "network.public.address",
				Value:        "vco12-usvi1.velocloud.net",
				DefaultValue: strptr(""),
				IsReadOnly:   types.TinyInt(false),
				IsPassword:   types.TinyInt(false),
				DataType:     types.PropertyDataTypeString,
				Description:  strptr("Public address of this orchestrator."),
			},
			Created:  mustStamp("2019-03-04T10:00:00Z"),
			Modified: mustStamp("2023-06-01T08:30:00Z"),
		},
		{
			SystemProperty: types.SystemProperty{
				ID:         2,
				Name:       "mail.smtp.pass",
				Value:      "hunter2",
				IsReadOnly: types.TinyInt(false),
				IsPassword: types.TinyInt(true),
				DataType:   types.PropertyDataTypeString,
			},
			Created:  mustStamp("2019-03-04T10:00:00Z"),
			Modified: types.NeverDateTime(),
		},
		{
			SystemProperty: types.SystemProperty{
				ID:         3,
				Name:       "session.options.maxAgeSeconds",
				Value:      "86400",
				IsReadOnly: types.TinyInt(true),
				IsPassword: types.TinyInt(false),
				DataType:   types.PropertyDataTypeNumber,
			},
			Created:  mustStamp("2019-03-04T10:00:00Z"),
			Modified: types.NoDateTime(),
		},
	}
}

// rawGateways is served byte-for-byte by network/getNetworkGateways. It is
// deliberately raw JSON rather than marshalled Go values: the portal mixes
// RFC 3339 strings, epoch integers, the "null" and "0000-00-00 00:00:00"
// date sentinels, empty-string and "UNKNOWN" addresses, and 0/1 booleans in
// a single response, and clients have to cope with all of them at once.
const rawGateways = `[
  {
    "id": 1,
    "name": "vcg1-usvi1",
    "description": null,
    "dnsName": "vcg1-usvi1.velocloud.net",
    "created": "2019-03-04T10:15:00Z",
    "logicalId": "fdb96850-b9cd-4bd5-a69f-5a414d35b0d4",
    "networkId": 1,
    "enterpriseProxyId": null,
    "siteId": 4,
    "softwareVersion": "4.5.1",
    "buildNumber": "R451-20220810-GA",
    "deviceId": "5a:4d:4e:3f:a7:10",
    "ipAddress": "203.0.113.10",
    "ipV6Address": "2001:db8:113::10",
    "lastContact": 1693399445,
    "modified": "2023-08-30T12:04:05Z",
    "serviceUpSince": "2023-07-01T00:00:00Z",
    "systemUpSince": 1688169600,
    "activationKey": "AAAA-BBBB-CCCC-DDDD",
    "activationState": "ACTIVATED",
    "activationTime": "2019-03-04T10:20:00Z",
    "gatewayState": "CONNECTED",
    "bastionState": "UNCONFIGURED",
    "serviceState": "IN_SERVICE",
    "utilization": 12.5,
    "utilizationDetail": {"load": 12.5, "overall": 12.5, "cpu": 8.25, "memory": 43.5},
    "endpointPkiMode": "CERTIFICATE_OPTIONAL",
    "connectedEdges": 12,
    "connectedEdgeList": [],
    "handOffDetail": null,
    "alertsEnabled": 1,
    "ipsecGatewayDetail": {"enabled": true, "strictHostCheck": false, "strictHostCheckDN": null},
    "isLoadBalanced": 0,
    "privateIpAddress": "10.0.4.10"
  },
  {
    "id": 2,
    "name": "vcg2-usvi1",
    "description": "standby",
    "dnsName": null,
    "created": "2021-11-19T08:00:00Z",
    "logicalId": "gateway77e3c814-53f7-4502-9a85-a7c0ddbf03b7",
    "networkId": 1,
    "enterpriseProxyId": null,
    "siteId": 5,
    "softwareVersion": "4.5.1",
    "buildNumber": "R451-20220810-GA",
    "deviceId": null,
    "ipAddress": "",
    "ipV6Address": "",
    "lastContact": "0000-00-00 00:00:00",
    "modified": "2021-11-19T08:00:00Z",
    "serviceUpSince": "null",
    "systemUpSince": "null",
    "activationKey": "EEEE-FFFF-0000-1111",
    "activationState": "PENDING",
    "activationTime": "null",
    "gatewayState": "NEVER_ACTIVATED",
    "bastionState": "UNCONFIGURED",
    "serviceState": "OUT_OF_SERVICE",
    "utilization": 0,
    "utilizationDetail": null,
    "endpointPkiMode": "CERTIFICATE_DISABLED",
    "connectedEdges": 0,
    "connectedEdgeList": [],
    "handOffDetail": null,
    "alertsEnabled": 0,
    "ipsecGatewayDetail": null,
    "isLoadBalanced": 0,
    "privateIpAddress": "UNKNOWN"
  }
]`

// parseGatewayFixtures decodes rawGateways through the typed layer, both to
// hand request handlers the gateway IDs and to keep the fixture honest: a
// fixture the client types cannot decode fails at construction, not in a
// test halfway through a session.
func parseGatewayFixtures() []types.Gateway {
	var gws []types.Gateway
	if err := json.Unmarshal([]byte(rawGateways), &gws); err != nil {
		panic(fmt.Sprintf("vcosim fixture: %v", err))
	}
	return gws
}

// fixtureMetricsSeries fabricates one flat data point per requested metric
// across the requested interval.
func fixtureMetricsSeries(req types.GatewayStatusMetricsRequest) map[string]any {
	series := make([]map[string]any, 0, len(req.Metrics))
	for i, m := range req.Metrics {
		series = append(series, map[string]any{
			"metric": m,
			"start":  req.Interval.Start,
			"end":    req.Interval.End,
			"min":    float64(i),
			"max":    float64(i) + 1,
			"total":  float64(i) * 10,
		})
	}
	return map[string]any{"series": series}
}

package types

import "encoding/json"

// GatewayMetric names one time-series metric the portal records per gateway.
type GatewayMetric string

const (
	GatewayMetricTunnelCount       GatewayMetric = "tunnelCount"
	GatewayMetricMemoryPct         GatewayMetric = "memoryPct"
	GatewayMetricFlowCount         GatewayMetric = "flowCount"
	GatewayMetricCPUPct            GatewayMetric = "cpuPct"
	GatewayMetricHandoffQueueDrops GatewayMetric = "handoffQueueDrops"
	GatewayMetricConnectedEdges    GatewayMetric = "connectedEdges"
	GatewayMetricTunnelCountV6     GatewayMetric = "tunnelCountV6"
)

// GatewayMetrics is a set of metrics, wire-encoded as a JSON array. Building
// it through NewGatewayMetrics removes duplicates while preserving the order
// metrics were first seen.
type GatewayMetrics []GatewayMetric

// NewGatewayMetrics builds a duplicate-free metric set.
func NewGatewayMetrics(metrics ...GatewayMetric) GatewayMetrics {
	seen := make(map[GatewayMetric]struct{}, len(metrics))
	out := make(GatewayMetrics, 0, len(metrics))
	for _, m := range metrics {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Contains reports whether m includes metric.
func (m GatewayMetrics) Contains(metric GatewayMetric) bool {
	for _, have := range m {
		if have == metric {
			return true
		}
	}
	return false
}

// GatewayStatusMetricsRequest is the body for POST
// metrics/getGatewayStatusMetrics.
type GatewayStatusMetricsRequest struct {
	GatewayID int            `json:"gatewayId"`
	Interval  Interval       `json:"interval"`
	Metrics   GatewayMetrics `json:"metrics"`
}

// GatewayState is the connectivity state of a gateway.
type GatewayState string

const (
	GatewayStateNeverActivated GatewayState = "NEVER_ACTIVATED"
	GatewayStateDegraded       GatewayState = "DEGRADED"
	GatewayStateQuiesced       GatewayState = "QUIESCED"
	GatewayStateDisabled       GatewayState = "DISABLED"
	GatewayStateOutOfService   GatewayState = "OUT_OF_SERVICE"
	GatewayStateConnected      GatewayState = "CONNECTED"
	GatewayStateOffline        GatewayState = "OFFLINE"
)

// GatewayCertificate is one certificate issued to a gateway.
type GatewayCertificate struct {
	ID             int      `json:"id"`
	Created        DateTime `json:"created"`
	CSRID          int      `json:"csrId"`
	GatewayID      int      `json:"gatewayId"`
	NetworkID      int      `json:"networkId"`
	Certificate    string   `json:"certificate"`
	SerialNumber   string   `json:"serialNumber"`
	SubjectKeyID   string   `json:"subjectKeyId"`
	FingerPrint    string   `json:"fingerPrint"`
	FingerPrint256 string   `json:"fingerPrint256"`
	ValidFrom      DateTime `json:"validFrom"`
	ValidTo        DateTime `json:"validTo"`
}

// GatewayType classifies a gateway within an enterprise association.
type GatewayType string

const (
	GatewayTypeOther      GatewayType = "OTHER"
	GatewayTypeSuper      GatewayType = "SUPER"
	GatewayTypeDatacenter GatewayType = "DATACENTER"
	GatewayTypeHandoff    GatewayType = "HANDOFF"
	GatewayTypeSuperAlt   GatewayType = "SUPER_ALT"
	GatewayTypePrimary    GatewayType = "PRIMARY"
	GatewayTypeSecondary  GatewayType = "SECONDARY"
)

// GatewayEnterpriseAssoc links a gateway to an enterprise it serves.
type GatewayEnterpriseAssoc struct {
	Enterprise
	EnterpriseID         int         `json:"enterpriseId"`
	EnterpriseObjectID   *int        `json:"enterpriseObjectId"`
	EnterpriseObjectName *string     `json:"enterpriseObjectName"`
	EnterpriseObjectType *string     `json:"enterpriseObjectType"`
	EdgeID               *int        `json:"edgeId"`
	EdgeName             *string     `json:"edgeName"`
	EdgeLogicalID        *LogicalID  `json:"edgeLogicalId"`
	GatewayType          GatewayType `json:"gatewayType"`
	Pinned               int         `json:"pinned"`
}

// Site is the physical location record attached to gateways and edges.
type Site struct {
	ID                     int       `json:"id"`
	Created                DateTime  `json:"created"`
	Name                   *string   `json:"name"`
	LogicalID              LogicalID `json:"logicalId"`
	ContactName            string    `json:"contactName"`
	ContactPhone           *string   `json:"contactPhone"`
	ContactMobile          *string   `json:"contactMobile"`
	ContactEmail           *string   `json:"contactEmail"`
	StreetAddress          *string   `json:"streetAddress"`
	StreetAddress2         *string   `json:"streetAddress2"`
	City                   *string   `json:"city"`
	State                  *string   `json:"state"`
	PostalCode             *string   `json:"postalCode"`
	Country                *string   `json:"country"`
	Lat                    float64   `json:"lat"`
	Lon                    float64   `json:"lon"`
	Timezone               string    `json:"timezone"`
	Locale                 string    `json:"locale"`
	ShippingSameAsLocation TinyInt   `json:"shippingSameAsLocation"`
	ShippingContactName    *string   `json:"shippingContactName"`
	ShippingAddress        *string   `json:"shippingAddress"`
	ShippingAddress2       *string   `json:"shippingAddress2"`
	ShippingCity           *string   `json:"shippingCity"`
	ShippingState          *string   `json:"shippingState"`
	ShippingCountry        *string   `json:"shippingCountry"`
	ShippingPostalCode     *string   `json:"shippingPostalCode"`
	Modified               DateTime  `json:"modified"`
}

// GatewayHandoffType selects how a gateway participates in handoff.
type GatewayHandoffType string

const (
	GatewayHandoffTypeNone  GatewayHandoffType = "NONE"
	GatewayHandoffTypeAllow GatewayHandoffType = "ALLOW"
	GatewayHandoffTypeOnly  GatewayHandoffType = "ONLY"
)

// GatewayPool groups gateways for assignment to enterprises.
type GatewayPool struct {
	ID                int                `json:"id"`
	NetworkID         int                `json:"networkId"`
	EnterpriseProxyID *int               `json:"enterpriseProxyId"`
	Created           DateTime           `json:"created"`
	Name              string             `json:"name"`
	Description       *string            `json:"description"`
	LogicalID         LogicalID          `json:"logicalId"`
	IsDefault         TinyInt            `json:"isDefault"`
	IPv4Enabled       TinyInt            `json:"ipV4Enabled"`
	IPv6Enabled       TinyInt            `json:"ipV6Enabled"`
	HandOffType       GatewayHandoffType `json:"handOffType"`
	Modified          DateTime           `json:"modified"`
}

// GatewayPoolAssoc links a gateway to a pool it belongs to.
type GatewayPoolAssoc struct {
	GatewayPool
	GatewayPoolAssocID int `json:"gatewayPoolAssocId"`
	GatewayID          int `json:"gatewayId"`
}

// UtilizationDetail breaks down a gateway's utilization score.
type UtilizationDetail struct {
	Load    float32 `json:"load"`
	Overall float32 `json:"overall"`
	CPU     float32 `json:"cpu"`
	Memory  float32 `json:"memory"`
}

// GatewaySubnetHandoffType selects NAT or VLAN handoff for one subnet.
type GatewaySubnetHandoffType string

const (
	GatewaySubnetHandoffNAT  GatewaySubnetHandoffType = "NAT"
	GatewaySubnetHandoffVLAN GatewaySubnetHandoffType = "VLAN"
)

// GatewayHandoffSubnet is one handoff subnet attached to a gateway.
type GatewayHandoffSubnet struct {
	Name        string                   `json:"name"`
	RouteCost   uint8                    `json:"routeCost"`
	CIDRIP      IPv4Address              `json:"cidrIp"`
	CIDRPrefix  uint8                    `json:"cidrPrefix"`
	Encrypt     bool                     `json:"encrypt"`
	HandOffType GatewaySubnetHandoffType `json:"handOffType"`
}

// GatewayICMPProbe configures handoff liveness probing.
type GatewayICMPProbe struct {
	Enabled          bool         `json:"enabled"`
	ProbeType        *string      `json:"probeType,omitempty"`
	CTag             *int         `json:"cTag,omitempty"`
	STag             *int         `json:"sTag,omitempty"`
	DestinationIP    *IPv4Address `json:"destinationIp,omitempty"`
	FrequencySeconds *int         `json:"frequencySeconds,omitempty"`
	Threshold        *int         `json:"threshold,omitempty"`
}

// GatewayICMPResponder configures the handoff probe responder.
type GatewayICMPResponder struct {
	Enabled   bool        `json:"enabled"`
	IPAddress IPv4Address `json:"ipAddress"`
	Mode      string      `json:"mode"`
}

// GatewayHandoffDetail is the full handoff configuration of a gateway.
type GatewayHandoffDetail struct {
	Type          *string                `json:"type,omitempty"`
	Subnets       []GatewayHandoffSubnet `json:"subnets"`
	ICMPProbe     GatewayICMPProbe       `json:"icmpProbe"`
	ICMPResponder GatewayICMPResponder   `json:"icmpResponder"`
}

// GatewayHandoffEdge is an edge pinned to a gateway for handoff.
type GatewayHandoffEdge struct {
	Edge
	EdgeID              int       `json:"edgeId"`
	IsPrimary           int       `json:"isPrimary"`
	Pinned              int       `json:"pinned"`
	EnterpriseLogicalID LogicalID `json:"enterpriseLogicalId"`
	EnterpriseName      string    `json:"enterpriseName"`
}

// GatewayRoleType names a plane or service role a gateway can hold.
type GatewayRoleType string

const (
	GatewayRoleDataPlane    GatewayRoleType = "DATA_PLANE"
	GatewayRoleControlPlane GatewayRoleType = "CONTROL_PLANE"
	GatewayRoleVPNTunnel    GatewayRoleType = "VPN_TUNNEL"
	GatewayRoleOnPremise    GatewayRoleType = "ON_PREMISE"
	GatewayRoleCDE          GatewayRoleType = "CDE"
	GatewayRoleCWS          GatewayRoleType = "CWS"
)

// GatewayRole is one role assignment on a gateway.
type GatewayRole struct {
	Created     DateTime        `json:"created"`
	GatewayID   int             `json:"gatewayId"`
	GatewayRole GatewayRoleType `json:"gatewayRole"`
	Required    int             `json:"required"`
}

// SyslogLocalFacility is a syslog local facility code.
type SyslogLocalFacility string

const (
	SyslogFacilityLocal0 SyslogLocalFacility = "LOCAL0"
	SyslogFacilityLocal1 SyslogLocalFacility = "LOCAL1"
	SyslogFacilityLocal2 SyslogLocalFacility = "LOCAL2"
	SyslogFacilityLocal3 SyslogLocalFacility = "LOCAL3"
	SyslogFacilityLocal4 SyslogLocalFacility = "LOCAL4"
	SyslogFacilityLocal5 SyslogLocalFacility = "LOCAL5"
	SyslogFacilityLocal6 SyslogLocalFacility = "LOCAL6"
	SyslogFacilityLocal7 SyslogLocalFacility = "LOCAL7"
)

// GatewaySyslogCollector is one syslog destination for a gateway.
type GatewaySyslogCollector struct {
	Host     *string   `json:"host"`
	Port     *uint16   `json:"port"`
	Protocol *TCPOrUDP `json:"protocol"`
	Severity *string   `json:"severity"`
}

// GatewaySyslogSettings is a gateway's syslog configuration.
type GatewaySyslogSettings struct {
	Tag          string                   `json:"tag"`
	FacilityCode SyslogLocalFacility      `json:"facilityCode"`
	Collectors   []GatewaySyslogCollector `json:"collectors"`
}

// IPsecGatewayDetail is a gateway's IPsec configuration summary.
type IPsecGatewayDetail struct {
	Enabled           bool    `json:"enabled"`
	StrictHostCheck   bool    `json:"strictHostCheck"`
	StrictHostCheckDN *string `json:"strictHostCheckDN"`
}

// Gateway is one item of the network/getNetworkGateways result. Optional
// sub-resources selected through the request's "with" parameter live at the
// end of the struct; the portal omits them otherwise.
type Gateway struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	DNSName           *string   `json:"dnsName"`
	Created           DateTime  `json:"created"`
	LogicalID         LogicalID `json:"logicalId"`
	NetworkID         *int      `json:"networkId"`
	EnterpriseProxyID *int      `json:"enterpriseProxyId"`
	SiteID            int       `json:"siteId"`
	SoftwareVersion   string    `json:"softwareVersion"`
	BuildNumber       string    `json:"buildNumber"`
	// DeviceID is sometimes a UUID and sometimes a MAC address, so it stays
	// an untyped string.
	DeviceID *string `json:"deviceId"`

	IPAddress   *IPv4Address `json:"ipAddress"`
	IPv6Address *IPv6Address `json:"ipV6Address"`

	LastContact    DateTime `json:"lastContact"`
	Modified       DateTime `json:"modified"`
	ServiceUpSince DateTime `json:"serviceUpSince"`
	SystemUpSince  DateTime `json:"systemUpSince"`

	ActivationKey   string          `json:"activationKey"`
	ActivationState ActivationState `json:"activationState"`
	ActivationTime  DateTime        `json:"activationTime"`

	GatewayState GatewayState `json:"gatewayState"`
	BastionState BastionState `json:"bastionState"`
	ServiceState ServiceState `json:"serviceState"`

	Utilization       float32            `json:"utilization"`
	UtilizationDetail *UtilizationDetail `json:"utilizationDetail"`

	EndpointPKIMode EndpointPKIMode `json:"endpointPkiMode"`

	ConnectedEdges    int                          `json:"connectedEdges"`
	ConnectedEdgeList []map[string]json.RawMessage `json:"connectedEdgeList"`

	HandOffDetail *GatewayHandoffDetail `json:"handOffDetail"`

	AlertsEnabled      *TinyInt            `json:"alertsEnabled"`
	IPsecGatewayDetail *IPsecGatewayDetail `json:"ipsecGatewayDetail"`

	IsLoadBalanced TinyInt `json:"isLoadBalanced"`

	PrivateIPAddress *IPv4Address `json:"privateIpAddress"`

	// Populated only when requested through the "with" parameter.
	Certificates           []GatewayCertificate     `json:"certificates,omitempty"`
	DataCenters            []json.RawMessage        `json:"dataCenters,omitempty"`
	EnterpriseAssociations []GatewayEnterpriseAssoc `json:"enterpriseAssociations,omitempty"`
	Enterprises            []Enterprise             `json:"enterprises,omitempty"`
	HandOffEdges           []GatewayHandoffEdge     `json:"handOffEdges,omitempty"`
	Pools                  []GatewayPoolAssoc       `json:"pools,omitempty"`
	Site                   *Site                    `json:"site,omitempty"`
	Roles                  []GatewayRole            `json:"roles,omitempty"`
	Syslog                 *GatewaySyslogCollector  `json:"syslog,omitempty"`
}

package types

// BastionPromotedState extends BastionState with the promotion phases an
// edge can pass through.
type BastionPromotedState string

const (
	BastionPromotedStateUnconfigured       BastionPromotedState = "UNCONFIGURED"
	BastionPromotedStateStageRequested     BastionPromotedState = "STAGE_REQUESTED"
	BastionPromotedStateUnstageRequested   BastionPromotedState = "UNSTAGE_REQUESTED"
	BastionPromotedStateStaged             BastionPromotedState = "STAGED"
	BastionPromotedStateUnstaged           BastionPromotedState = "UNSTAGED"
	BastionPromotedStatePromotionRequested BastionPromotedState = "PROMOTION_REQUESTED"
	BastionPromotedStatePromotionPending   BastionPromotedState = "PROMOTION_PENDING"
	BastionPromotedStatePromoted           BastionPromotedState = "PROMOTED"
)

// EdgeState is the connectivity state of an edge device.
type EdgeState string

const (
	EdgeStateNeverActivated EdgeState = "NEVER_ACTIVATED"
	EdgeStateDegraded       EdgeState = "DEGRADED"
	EdgeStateOffline        EdgeState = "OFFLINE"
	EdgeStateDisabled       EdgeState = "DISABLED"
	EdgeStateExpired        EdgeState = "EXPIRED"
	EdgeStateConnected      EdgeState = "CONNECTED"
)

// HAState is the high-availability pairing state of an edge.
type HAState string

const (
	HAStateUnconfigured        HAState = "UNCONFIGURED"
	HAStatePendingInit         HAState = "PENDING_INIT"
	HAStatePendingConfirmation HAState = "PENDING_CONFIRMATION"
	HAStatePendingConfirmed    HAState = "PENDING_CONFIRMED"
	HAStatePendingDissociation HAState = "PENDING_DISSOCIATION"
	HAStateReady               HAState = "READY"
	HAStateFailed              HAState = "FAILED"
)

// Edge is an edge device record.
type Edge struct {
	ActivationKey          string               `json:"activationKey"`
	ActivationKeyExpires   DateTime             `json:"activationKeyExpires"`
	ActivationState        ActivationState      `json:"activationState"`
	ActivationTime         DateTime             `json:"activationTime"`
	AlertsEnabled          TinyInt              `json:"alertsEnabled"`
	BastionState           BastionPromotedState `json:"bastionState"`
	BuildNumber            string               `json:"buildNumber"`
	Created                DateTime             `json:"created"`
	CustomInfo             string               `json:"customInfo"`
	Description            string               `json:"description"`
	DeviceFamily           string               `json:"deviceFamily"`
	DeviceID               string               `json:"deviceId"`
	DNSName                string               `json:"dnsName"`
	EdgeState              EdgeState            `json:"edgeState"`
	EdgeStateTime          DateTime             `json:"edgeStateTime"`
	EndpointPKIMode        EndpointPKIMode      `json:"endpointPkiMode"`
	EnterpriseID           int                  `json:"enterpriseId"`
	FactorySoftwareVersion string               `json:"factorySoftwareVersion"`
	FactoryBuildNumber     string               `json:"factoryBuildNumber"`
	HALastContact          DateTime             `json:"haLastContact"`
	HAPreviousState        HAState              `json:"haPreviousState"`
	HASerialNumber         string               `json:"haSerialNumber"`
	HAState                HAState              `json:"haState"`
	ID                     int                  `json:"id"`
	IsLive                 int                  `json:"isLive"`
	LastContact            DateTime             `json:"lastContact"`
	LogicalID              LogicalID            `json:"logicalId"`
	ModelNumber            string               `json:"modelNumber"`
	Modified               DateTime             `json:"modified"`
	Name                   string               `json:"name"`
	OperatorAlertsEnabled  TinyInt              `json:"operatorAlertsEnabled"`
	SelfMACAddress         MACAddress           `json:"selfMacAddress"`
	SerialNumber           string               `json:"serialNumber"`
	ServiceState           ServiceState         `json:"serviceState"`
	ServiceUpSince         DateTime             `json:"serviceUpSince"`
	SiteID                 int                  `json:"siteId"`
	SoftwareUpdated        DateTime             `json:"softwareUpdated"`
	SoftwareVersion        string               `json:"softwareVersion"`
	SystemUpSince          DateTime             `json:"systemUpSince"`
}

package types

// Enumerated portal states shared by several resources. The portal
// transmits these as SCREAMING_SNAKE_CASE strings; unknown values are left
// as-is rather than rejected, since the portal grows new states across
// releases.

// ServiceState is used on edges and gateways.
type ServiceState string

const (
	ServiceStateInService      ServiceState = "IN_SERVICE"
	ServiceStateOutOfService   ServiceState = "OUT_OF_SERVICE"
	ServiceStatePendingService ServiceState = "PENDING_SERVICE"
	ServiceStateQuiesced       ServiceState = "QUIESCED"
)

// ActivationState is used on edges and gateways.
type ActivationState string

const (
	ActivationStateUnassigned          ActivationState = "UNASSIGNED"
	ActivationStatePending             ActivationState = "PENDING"
	ActivationStateActivated           ActivationState = "ACTIVATED"
	ActivationStateReactivationPending ActivationState = "REACTIVATION_PENDING"
)

// BastionState is used on enterprises and gateways.
type BastionState string

const (
	BastionStateUnconfigured     BastionState = "UNCONFIGURED"
	BastionStateStageRequested   BastionState = "STAGE_REQUESTED"
	BastionStateUnstageRequested BastionState = "UNSTAGE_REQUESTED"
	BastionStateStaged           BastionState = "STAGED"
	BastionStateUnstaged         BastionState = "UNSTAGED"
)

// EndpointPKIMode is used on edges, enterprises and gateways.
type EndpointPKIMode string

const (
	EndpointPKIModeCertificateDisabled EndpointPKIMode = "CERTIFICATE_DISABLED"
	EndpointPKIModeCertificateOptional EndpointPKIMode = "CERTIFICATE_OPTIONAL"
	EndpointPKIModeCertificateRequired EndpointPKIMode = "CERTIFICATE_REQUIRED"
)

// TCPOrUDP selects a transport protocol in collector settings.
type TCPOrUDP string

const (
	TransportTCP TCPOrUDP = "TCP"
	TransportUDP TCPOrUDP = "UDP"
)

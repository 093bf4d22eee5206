package types

// Enterprise is a customer tenant record.
type Enterprise struct {
	ID                    int             `json:"id"`
	Created               DateTime        `json:"created"`
	NetworkID             int             `json:"networkId"`
	GatewayPoolID         int             `json:"gatewayPoolId"`
	AlertsEnabled         TinyInt         `json:"alertsEnabled"`
	OperatorAlertsEnabled TinyInt         `json:"operatorAlertsEnabled"`
	EndpointPKIMode       EndpointPKIMode `json:"endpointPkiMode"`
	Name                  string          `json:"name"`
	Domain                *string         `json:"domain"`
	Prefix                *string         `json:"prefix"`
	LogicalID             LogicalID       `json:"logicalId"`
	AccountNumber         string          `json:"accountNumber"`
	Description           *string         `json:"description"`
	ContactName           *string         `json:"contactName"`
	ContactPhone          *string         `json:"contactPhone"`
	ContactMobile         *string         `json:"contactMobile"`
	ContactEmail          *string         `json:"contactEmail"`
	StreetAddress         *string         `json:"streetAddress"`
	StreetAddress2        *string         `json:"streetAddress2"`
	City                  *string         `json:"city"`
	State                 *string         `json:"state"`
	PostalCode            *string         `json:"postalCode"`
	Country               *string         `json:"country"`
	Lat                   float64         `json:"lat"`
	Lon                   float64         `json:"lon"`
	Timezone              string          `json:"timezone"`
	Locale                string          `json:"locale"`
	Modified              DateTime        `json:"modified"`
	BastionState          BastionState    `json:"bastionState"`
}

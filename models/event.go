package models

// FindingEvent is the EventBridge envelope GuardDuty delivers for a single
// finding. Pointer fields distinguish an absent key from an empty value.
type FindingEvent struct {
	ID         string         `json:"id,omitempty"          yaml:"id,omitempty"`
	DetailType string         `json:"detail-type,omitempty" yaml:"detail-type,omitempty"`
	Source     string         `json:"source,omitempty"      yaml:"source,omitempty"`
	Account    *string        `json:"account,omitempty"     yaml:"account,omitempty"`
	Region     *string        `json:"region,omitempty"      yaml:"region,omitempty"`
	Time       string         `json:"time,omitempty"        yaml:"time,omitempty"`
	Detail     *FindingDetail `json:"detail,omitempty"      yaml:"detail,omitempty"`
}

// FindingDetail is the GuardDuty finding itself.
type FindingDetail struct {
	ID          *string      `json:"id,omitempty"          yaml:"id,omitempty"`
	Type        *string      `json:"type,omitempty"        yaml:"type,omitempty"`
	Title       string       `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string      `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    *float64     `json:"severity,omitempty"    yaml:"severity,omitempty"`
	AccountID   string       `json:"accountId,omitempty"   yaml:"accountId,omitempty"`
	Region      string       `json:"region,omitempty"      yaml:"region,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   *string      `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
	Service     *ServiceInfo `json:"service,omitempty"     yaml:"service,omitempty"`
}

// ServiceInfo carries the detector context, including what was observed.
type ServiceInfo struct {
	ServiceName string  `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	DetectorID  string  `json:"detectorId,omitempty"  yaml:"detectorId,omitempty"`
	Count       int     `json:"count,omitempty"       yaml:"count,omitempty"`
	Action      *Action `json:"action,omitempty"      yaml:"action,omitempty"`
}

// Action is the observed activity. At most one of the variants is set.
type Action struct {
	ActionType              string                   `json:"actionType,omitempty"              yaml:"actionType,omitempty"`
	AwsAPICallAction        *AwsAPICallAction        `json:"awsApiCallAction,omitempty"        yaml:"awsApiCallAction,omitempty"`
	NetworkConnectionAction *NetworkConnectionAction `json:"networkConnectionAction,omitempty" yaml:"networkConnectionAction,omitempty"`
}

type AwsAPICallAction struct {
	API             string           `json:"api,omitempty"             yaml:"api,omitempty"`
	ServiceName     string           `json:"serviceName,omitempty"     yaml:"serviceName,omitempty"`
	CallerType      string           `json:"callerType,omitempty"      yaml:"callerType,omitempty"`
	RemoteIPDetails *RemoteIPDetails `json:"remoteIpDetails,omitempty" yaml:"remoteIpDetails,omitempty"`
}

type NetworkConnectionAction struct {
	ConnectionDirection string           `json:"connectionDirection,omitempty" yaml:"connectionDirection,omitempty"`
	Protocol            string           `json:"protocol,omitempty"            yaml:"protocol,omitempty"`
	Blocked             bool             `json:"blocked,omitempty"             yaml:"blocked,omitempty"`
	RemoteIPDetails     *RemoteIPDetails `json:"remoteIpDetails,omitempty"     yaml:"remoteIpDetails,omitempty"`
}

// RemoteIPDetails is GuardDuty's geolocation block for the remote party.
type RemoteIPDetails struct {
	IPAddressV4  string        `json:"ipAddressV4,omitempty"  yaml:"ipAddressV4,omitempty"`
	City         *City         `json:"city,omitempty"         yaml:"city,omitempty"`
	Country      *Country      `json:"country,omitempty"      yaml:"country,omitempty"`
	GeoLocation  *GeoLocation  `json:"geoLocation,omitempty"  yaml:"geoLocation,omitempty"`
	Organization *Organization `json:"organization,omitempty" yaml:"organization,omitempty"`
}

type City struct {
	CityName string `json:"cityName,omitempty" yaml:"cityName,omitempty"`
}

type Country struct {
	CountryName string `json:"countryName,omitempty" yaml:"countryName,omitempty"`
	CountryCode string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
}

type GeoLocation struct {
	Lat *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

type Organization struct {
	Asn    string `json:"asn,omitempty"    yaml:"asn,omitempty"`
	AsnOrg string `json:"asnOrg,omitempty" yaml:"asnOrg,omitempty"`
	Isp    string `json:"isp,omitempty"    yaml:"isp,omitempty"`
	Org    string `json:"org,omitempty"    yaml:"org,omitempty"`
}

// Score returns the detail severity, or nil when the detail is absent.
func (e *FindingEvent) Score() *float64 {
	if e == nil || e.Detail == nil {
		return nil
	}
	return e.Detail.Severity
}

// RemoteIP returns the remote party of the observed action, preferring the
// API call variant. Nil when the finding carries no geolocation.
func (e *FindingEvent) RemoteIP() *RemoteIPDetails {
	if e == nil || e.Detail == nil || e.Detail.Service == nil || e.Detail.Service.Action == nil {
		return nil
	}
	a := e.Detail.Service.Action
	if a.AwsAPICallAction != nil && a.AwsAPICallAction.RemoteIPDetails != nil {
		return a.AwsAPICallAction.RemoteIPDetails
	}
	if a.NetworkConnectionAction != nil {
		return a.NetworkConnectionAction.RemoteIPDetails
	}
	return nil
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingEventDecodeKeepsAbsenceDistinct(t *testing.T) {
	raw := `{
		"account": "123",
		"detail": {"id": "abc", "type": "Recon:EC2/PortProbeUnprotectedPort", "severity": 0}
	}`
	var evt FindingEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &evt))

	assert.Nil(t, evt.Region)
	require.NotNil(t, evt.Account)
	assert.Equal(t, "123", *evt.Account)
	require.NotNil(t, evt.Score())
	assert.Equal(t, 0.0, *evt.Score())
	assert.Nil(t, evt.Detail.UpdatedAt)
	assert.Nil(t, evt.RemoteIP())
}

func TestScoreNilSafe(t *testing.T) {
	var evt *FindingEvent
	assert.Nil(t, evt.Score())
	assert.Nil(t, (&FindingEvent{}).Score())
}

func TestRemoteIPPrefersAPICallAction(t *testing.T) {
	api := &RemoteIPDetails{IPAddressV4: "198.51.100.1"}
	net := &RemoteIPDetails{IPAddressV4: "203.0.113.9"}
	evt := &FindingEvent{Detail: &FindingDetail{Service: &ServiceInfo{Action: &Action{
		AwsAPICallAction:        &AwsAPICallAction{RemoteIPDetails: api},
		NetworkConnectionAction: &NetworkConnectionAction{RemoteIPDetails: net},
	}}}}
	assert.Same(t, api, evt.RemoteIP())

	evt.Detail.Service.Action.AwsAPICallAction = nil
	assert.Same(t, net, evt.RemoteIP())
}

package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosmoTheDev/gdnotify/internal/config"
	"github.com/CosmoTheDev/gdnotify/models"
)

func ptr[T any](v T) *T { return &v }

func testConfig() config.Config {
	return config.Config{
		Channel:     "#guardduty",
		MinSeverity: "LOW",
		Username:    config.DefaultUsername,
		IconURL:     config.DefaultIconURL,
		ConsoleURL:  config.DefaultConsoleURL,
	}
}

// backdoorEvent is a well-formed High finding with API call geolocation.
func backdoorEvent() *models.FindingEvent {
	return &models.FindingEvent{
		Account: ptr("123"),
		Region:  ptr("us-east-1"),
		Detail: &models.FindingDetail{
			ID:          ptr("f00dfeed"),
			Type:        ptr("Backdoor"),
			Description: ptr("EC2 instance is communicating with a known C&C server."),
			Severity:    ptr(8.5),
			UpdatedAt:   ptr("2024-03-01T12:30:45.123Z"),
			Service: &models.ServiceInfo{Action: &models.Action{
				AwsAPICallAction: &models.AwsAPICallAction{
					RemoteIPDetails: &models.RemoteIPDetails{
						City:        &models.City{CityName: "Seattle"},
						Country:     &models.Country{CountryName: "United States"},
						GeoLocation: &models.GeoLocation{Lat: ptr(47.6062), Lon: ptr(-122.3321)},
					},
				},
			}},
		},
	}
}

func TestFormatBackdoorFinding(t *testing.T) {
	f := NewFormatter(testConfig())
	msg, err := f.Format(backdoorEvent(), models.TierHigh)
	require.NoError(t, err)

	require.Len(t, msg.Attachments, 1)
	a := msg.Attachments[0]
	link := "https://console.aws.amazon.com/guardduty/home?region=us-east-1#/findings?search=id%3Df00dfeed"

	assert.Equal(t, "Backdoor", a.Title)
	assert.Equal(t, "#ad0614", a.Color)
	assert.Equal(t, link, a.TitleLink)
	assert.Equal(t, "Backdoor - "+link, a.Fallback)
	assert.Contains(t, a.Fallback, "f00dfeed")
	assert.Equal(t, "*Finding in us-east-1 for Acct: 123*", a.Pretext)
	assert.Equal(t, []string{"pretext", "text"}, a.MrkdwnIn)
	assert.Equal(t,
		"EC2 instance is communicating with a known C&C server.\n\nCity: Seattle, Country: United States, Location: 47.6062, -122.3321",
		a.Text)

	require.Len(t, a.Fields, 3)
	assert.Equal(t, Field{Title: "Severity", Value: "High", Short: true}, a.Fields[0])
	assert.Equal(t, Field{Title: "Region", Value: "us-east-1", Short: true}, a.Fields[1])
	assert.Equal(t, Field{
		Title: "Last Seen",
		Value: "<!date^1709296245^{date} at {time} | 2024-03-01T12:30:45.123Z>",
		Short: true,
	}, a.Fields[2])

	assert.Equal(t, "#guardduty", msg.Channel)
	assert.Equal(t, "", msg.Text)
	assert.Equal(t, "GuardDuty", msg.Username)
	assert.Equal(t, config.DefaultIconURL, msg.IconURL)
	assert.True(t, msg.Mrkdwn)
}

func TestFormatWithoutGeolocation(t *testing.T) {
	evt := backdoorEvent()
	evt.Detail.Service = nil
	evt.Detail.Description = nil

	msg, err := NewFormatter(testConfig()).Format(evt, models.TierLow)
	require.NoError(t, err)
	assert.Equal(t, "No description available\n\n", msg.Attachments[0].Text)
	assert.Equal(t, "#e2d43b", msg.Attachments[0].Color)
}

func TestFormatPartialGeolocationUsesPlaceholders(t *testing.T) {
	evt := backdoorEvent()
	evt.Detail.Service.Action = &models.Action{
		NetworkConnectionAction: &models.NetworkConnectionAction{
			RemoteIPDetails: &models.RemoteIPDetails{
				Country:     &models.Country{CountryName: "Germany"},
				GeoLocation: &models.GeoLocation{Lat: ptr(52.52)},
			},
		},
	}

	msg, err := NewFormatter(testConfig()).Format(evt, models.TierMedium)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(msg.Attachments[0].Text,
		"\n\nCity: N/A, Country: Germany, Location: 52.52, N/A"), msg.Attachments[0].Text)
}

func TestFormatMissingRequiredFields(t *testing.T) {
	tests := []struct {
		field string
		strip func(*models.FindingEvent)
	}{
		{"detail", func(e *models.FindingEvent) { e.Detail = nil }},
		{"detail.type", func(e *models.FindingEvent) { e.Detail.Type = nil }},
		{"region", func(e *models.FindingEvent) { e.Region = nil }},
		{"detail.id", func(e *models.FindingEvent) { e.Detail.ID = nil }},
		{"account", func(e *models.FindingEvent) { e.Account = nil }},
		{"detail.updatedAt", func(e *models.FindingEvent) { e.Detail.UpdatedAt = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			evt := backdoorEvent()
			tt.strip(evt)

			_, err := NewFormatter(testConfig()).Format(evt, models.TierHigh)
			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing), "got %v", err)
			assert.Equal(t, tt.field, missing.Field)
			assert.Equal(t, OutcomeMissingField, KindOf(err))
		})
	}
}

func TestFormatBadTimestamp(t *testing.T) {
	evt := backdoorEvent()
	evt.Detail.UpdatedAt = ptr("yesterday")

	_, err := NewFormatter(testConfig()).Format(evt, models.TierHigh)
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, KindOf(err))
}

func TestFormatTimestampWithoutFraction(t *testing.T) {
	evt := backdoorEvent()
	evt.Detail.UpdatedAt = ptr("2024-03-01T12:30:45Z")

	msg, err := NewFormatter(testConfig()).Format(evt, models.TierHigh)
	require.NoError(t, err)
	assert.Equal(t, "<!date^1709296245^{date} at {time} | 2024-03-01T12:30:45Z>", msg.Attachments[0].Fields[2].Value)
}

func TestNewFormatterFillsDefaults(t *testing.T) {
	f := NewFormatter(config.Config{ConsoleURL: "https://console.example.com/guardduty/"})
	assert.Equal(t, "https://console.example.com/guardduty/home?region=eu-west-1#/findings?search=id%3Dx",
		f.FindingLink("eu-west-1", "x"))

	msg, err := NewFormatter(config.Config{}).Format(backdoorEvent(), models.TierHigh)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultUsername, msg.Username)
	assert.Equal(t, config.DefaultIconURL, msg.IconURL)
	assert.True(t, strings.HasPrefix(msg.Attachments[0].TitleLink, config.DefaultConsoleURL))
}

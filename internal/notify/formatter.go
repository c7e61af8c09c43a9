package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/CosmoTheDev/gdnotify/internal/config"
	"github.com/CosmoTheDev/gdnotify/models"
)

const (
	noDescription = "No description available"
	notAvailable  = "N/A"
)

// Formatter turns a classified finding into a Slack message.
type Formatter struct {
	channel    string
	username   string
	iconURL    string
	consoleURL string
}

// NewFormatter creates a Formatter from cfg.
func NewFormatter(cfg config.Config) *Formatter {
	f := &Formatter{
		channel:    cfg.Channel,
		username:   cfg.Username,
		iconURL:    cfg.IconURL,
		consoleURL: strings.TrimRight(cfg.ConsoleURL, "/"),
	}
	if f.username == "" {
		f.username = config.DefaultUsername
	}
	if f.iconURL == "" {
		f.iconURL = config.DefaultIconURL
	}
	if f.consoleURL == "" {
		f.consoleURL = config.DefaultConsoleURL
	}
	return f
}

// Format builds the message for evt. It returns a *MissingFieldError when the
// finding type, finding id, region, account or update time is absent.
func (f *Formatter) Format(evt *models.FindingEvent, tier models.Tier) (SlackMessage, error) {
	if evt == nil || evt.Detail == nil {
		return SlackMessage{}, &MissingFieldError{Field: "detail"}
	}
	d := evt.Detail

	findingType, err := required("detail.type", d.Type)
	if err != nil {
		return SlackMessage{}, err
	}
	region, err := required("region", evt.Region)
	if err != nil {
		return SlackMessage{}, err
	}
	findingID, err := required("detail.id", d.ID)
	if err != nil {
		return SlackMessage{}, err
	}
	account, err := required("account", evt.Account)
	if err != nil {
		return SlackMessage{}, err
	}
	updatedAt, err := required("detail.updatedAt", d.UpdatedAt)
	if err != nil {
		return SlackMessage{}, err
	}

	lastSeen, err := lastSeenValue(updatedAt)
	if err != nil {
		return SlackMessage{}, err
	}

	link := f.FindingLink(region, findingID)
	description := noDescription
	if d.Description != nil {
		description = *d.Description
	}

	return SlackMessage{
		Channel: f.channel,
		Text:    "",
		Attachments: []Attachment{{
			Fallback:  findingType + " - " + link,
			Pretext:   fmt.Sprintf("*Finding in %s for Acct: %s*", region, account),
			Title:     findingType,
			TitleLink: link,
			Text:      description + "\n\n" + geoSummary(evt.RemoteIP()),
			Fields: []Field{
				{Title: "Severity", Value: tier.Label, Short: true},
				{Title: "Region", Value: region, Short: true},
				{Title: "Last Seen", Value: lastSeen, Short: true},
			},
			MrkdwnIn: []string{"pretext", "text"},
			Color:    tier.Color,
		}},
		Username: f.username,
		Mrkdwn:   true,
		IconURL:  f.iconURL,
	}, nil
}

// FindingLink is the console deep link for a finding.
func (f *Formatter) FindingLink(region, findingID string) string {
	return fmt.Sprintf("%s/home?region=%s#/findings?search=id%%3D%s", f.consoleURL, region, findingID)
}

func required(field string, v *string) (string, error) {
	if v == nil {
		return "", &MissingFieldError{Field: field}
	}
	return *v, nil
}

// lastSeenValue renders updatedAt as a Slack date token with the raw
// timestamp as fallback text.
func lastSeenValue(updatedAt string) (string, error) {
	ts, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return "", fmt.Errorf("parsing updatedAt %q: %w", updatedAt, err)
	}
	return fmt.Sprintf("<!date^%d^{date} at {time} | %s>", ts.Unix(), updatedAt), nil
}

// geoSummary describes where the remote party is. Empty when the finding
// has no remote IP details; missing parts render as N/A.
func geoSummary(ip *models.RemoteIPDetails) string {
	if ip == nil {
		return ""
	}
	city, country, lat, lon := notAvailable, notAvailable, notAvailable, notAvailable
	if ip.City != nil && ip.City.CityName != "" {
		city = ip.City.CityName
	}
	if ip.Country != nil && ip.Country.CountryName != "" {
		country = ip.Country.CountryName
	}
	if ip.GeoLocation != nil {
		if ip.GeoLocation.Lat != nil {
			lat = strconv.FormatFloat(*ip.GeoLocation.Lat, 'f', -1, 64)
		}
		if ip.GeoLocation.Lon != nil {
			lon = strconv.FormatFloat(*ip.GeoLocation.Lon, 'f', -1, 64)
		}
	}
	return fmt.Sprintf("City: %s, Country: %s, Location: %s, %s", city, country, lat, lon)
}

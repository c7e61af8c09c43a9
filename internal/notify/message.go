package notify

// SlackMessage is the incoming-webhook payload. Field names are the wire
// contract and must not change.
type SlackMessage struct {
	Channel     string       `json:"channel"     yaml:"channel"`
	Text        string       `json:"text"        yaml:"text"`
	Attachments []Attachment `json:"attachments" yaml:"attachments"`
	Username    string       `json:"username"    yaml:"username"`
	Mrkdwn      bool         `json:"mrkdwn"      yaml:"mrkdwn"`
	IconURL     string       `json:"icon_url"    yaml:"icon_url"`
}

type Attachment struct {
	Fallback  string   `json:"fallback"   yaml:"fallback"`
	Pretext   string   `json:"pretext"    yaml:"pretext"`
	Title     string   `json:"title"      yaml:"title"`
	TitleLink string   `json:"title_link" yaml:"title_link"`
	Text      string   `json:"text"       yaml:"text"`
	Fields    []Field  `json:"fields"     yaml:"fields"`
	MrkdwnIn  []string `json:"mrkdwn_in"  yaml:"mrkdwn_in"`
	Color     string   `json:"color"      yaml:"color"`
}

type Field struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
	Short bool   `json:"short" yaml:"short"`
}

// DeliveryResult is what the webhook answered.
type DeliveryResult struct {
	StatusCode    int    `json:"statusCode"    yaml:"statusCode"`
	StatusMessage string `json:"statusMessage" yaml:"statusMessage"`
	Body          string `json:"body"          yaml:"body"`
}

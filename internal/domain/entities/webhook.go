package entities

// Webhook is a subscription registered on the hosting provider.
type Webhook struct {
	ID  int64
	URL string
}

// WebhookCredentials authenticate calls against the hosting provider API.
type WebhookCredentials struct {
	Username string
	Token    string
}

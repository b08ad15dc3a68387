package models

// DeliveryResult is the downstream webhook's answer to one forwarding
// attempt. It exists only for the duration of a single request.
type DeliveryResult struct {
	StatusCode int
	Body       string
}

// Succeeded reports whether the downstream accepted the message.
func (r *DeliveryResult) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

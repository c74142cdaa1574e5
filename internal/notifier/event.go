package notifier

// HiredEvent is the payload delivered to the winning freelancer after a
// committed hire.
type HiredEvent struct {
	BidId    string `json:"bidId"`
	GigId    string `json:"gigId"`
	GigTitle string `json:"gigTitle"`
	Message  string `json:"message"`
}

// envelope is the wire frame written to live channels.
type envelope struct {
	Event string     `json:"event"`
	Data  HiredEvent `json:"data"`
}

package intake

// Attachment is a single PDF pulled out of an inbound message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Message is an inbound mail message with its resume attachments.
type Message struct {
	ID          string
	Sender      string
	Subject     string
	Attachments []Attachment
}

// Resume is one accepted attachment paired with the message it came
// from, ready for screening.
type Resume struct {
	Filename string
	Data     []byte
	Sender   string
	Subject  string
}

package packet

// Message is a chat line attributed to Username.
//
// @gen
type Message struct {
	Username string `field:"String"`
	Message  string `field:"String"`
}

func (p Message) ID() Opcode {
	return 0x85
}

// Chat is an unattributed chat line, as typed by the client.
//
// @gen
type Chat struct {
	Message string `field:"String"`
}

func (p Chat) ID() Opcode {
	return 0xB6
}

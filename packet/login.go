package packet

// LoginRequest is the first packet a client sends. ProtocolMajor and
// ProtocolMinor both carry the client's network protocol number.
//
// @gen
type LoginRequest struct {
	Username      string `field:"String"`
	ProtocolMajor int32  `field:"Int"`
	ProtocolMinor int32  `field:"Int"`
	ClientID      uint32 `field:"UnsignedInt"`
	RealmsData    string `field:"String"`
}

func (p LoginRequest) ID() Opcode {
	return 0x82
}

// Login statuses carried by LoginResponse.
const (
	LoginSuccess int32 = iota
	LoginFailedClient
	LoginFailedServer
)

// @gen
type LoginResponse struct {
	Status int32 `field:"Int"`
}

func (p LoginResponse) ID() Opcode {
	return 0x83
}

// @gen
type Ready struct {
	Status byte `field:"Byte"`
}

func (p Ready) ID() Opcode {
	return 0x84
}

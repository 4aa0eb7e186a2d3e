package packet

// @gen
type ContainerOpen struct {
	WindowID      byte   `field:"Byte"`
	ContainerType byte   `field:"Byte"`
	Slot          byte   `field:"Byte"`
	Title         string `field:"String"`
}

func (p ContainerOpen) ID() Opcode {
	return 0xB0
}

// @gen
type ContainerClose struct {
	WindowID byte `field:"Byte"`
}

func (p ContainerClose) ID() Opcode {
	return 0xB1
}

// @gen
type ContainerSetData struct {
	WindowID byte   `field:"Byte"`
	Property uint16 `field:"UnsignedShort"`
	Value    uint16 `field:"UnsignedShort"`
}

func (p ContainerSetData) ID() Opcode {
	return 0xB3
}

// @gen
type ContainerAck struct {
	WindowID      byte   `field:"Byte"`
	UnknownFirst  uint16 `field:"UnsignedShort"`
	UnknownSecond byte   `field:"Byte"`
}

func (p ContainerAck) ID() Opcode {
	return 0xB5
}

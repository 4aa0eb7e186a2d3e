package packet

// MovePlayer reports a player's position and rotation. Rot holds yaw, pitch
// and body yaw in degrees.
//
// @gen
type MovePlayer struct {
	EntityID int32   `field:"Int"`
	Pos      Vector3 `field:"Vector3"`
	Rot      Vector3 `field:"Vector3"`
}

func (p MovePlayer) ID() Opcode {
	return 0x95
}

// @gen
type PlayerEquipment struct {
	EntityID int32  `field:"Int"`
	Block    uint16 `field:"UnsignedShort"`
	Meta     uint16 `field:"UnsignedShort"`
	Slot     byte   `field:"Byte"`
}

func (p PlayerEquipment) ID() Opcode {
	return 0xA0
}

// @gen
type PlayerArmorEquipment struct {
	EntityID int32  `field:"Int"`
	Slot1    uint16 `field:"UnsignedShort"`
	Slot2    uint16 `field:"UnsignedShort"`
	Slot3    uint16 `field:"UnsignedShort"`
	Slot4    uint16 `field:"UnsignedShort"`
}

func (p PlayerArmorEquipment) ID() Opcode {
	return 0xA1
}

// @gen
type Interact struct {
	Action   byte  `field:"Byte"`
	EntityID int32 `field:"Int"`
	TargetID int32 `field:"Int"`
}

func (p Interact) ID() Opcode {
	return 0xA2
}

// @gen
type UseItem struct {
	X      int32   `field:"Int"`
	Y      int32   `field:"Int"`
	Face   int32   `field:"Int"`
	Block  uint16  `field:"UnsignedShort"`
	Meta   byte    `field:"Byte"`
	ItemID int32   `field:"Int"`
	FPos   Vector3 `field:"Vector3"`
	Pos    Vector3 `field:"Vector3"`
}

func (p UseItem) ID() Opcode {
	return 0xA3
}

// @gen
type PlayerAction struct {
	Action   int32 `field:"Int"`
	X        int32 `field:"Int"`
	Y        int32 `field:"Int"`
	Face     int32 `field:"Int"`
	EntityID int32 `field:"Int"`
}

func (p PlayerAction) ID() Opcode {
	return 0xA4
}

// @gen
type HurtArmor struct {
	Armor byte `field:"Byte"`
}

func (p HurtArmor) ID() Opcode {
	return 0xA6
}

// @gen
type SetHealth struct {
	Health byte `field:"Byte"`
}

func (p SetHealth) ID() Opcode {
	return 0xAA
}

// @gen
type Animate struct {
	Action   byte  `field:"Byte"`
	EntityID int32 `field:"Int"`
}

func (p Animate) ID() Opcode {
	return 0xAC
}

// @gen
type Respawn struct {
	EntityID int32   `field:"Int"`
	Pos      Vector3 `field:"Vector3"`
}

func (p Respawn) ID() Opcode {
	return 0xAD
}

// @gen
type AdventureSettings struct {
	UnknownFirst  byte   `field:"Byte"`
	UnknownSecond uint32 `field:"UnsignedInt"`
}

func (p AdventureSettings) ID() Opcode {
	return 0xB8
}

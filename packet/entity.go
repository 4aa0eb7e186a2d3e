package packet

// Yaw and pitch bytes are angles scaled so that 256 is a full turn.

// @gen
type AddPlayer struct {
	PlayerID     uint64  `field:"UnsignedLong"`
	Username     string  `field:"String"`
	EntityID     int32   `field:"Int"`
	Pos          Vector3 `field:"Vector3"`
	Yaw          byte    `field:"Byte"`
	Pitch        byte    `field:"Byte"`
	ItemID       uint16  `field:"UnsignedShort"`
	ItemAuxValue uint16  `field:"UnsignedShort"`
}

func (p AddPlayer) ID() Opcode {
	return 0x89
}

// @gen
type RemovePlayer struct {
	EntityID int32  `field:"Int"`
	PlayerID uint64 `field:"UnsignedLong"`
}

func (p RemovePlayer) ID() Opcode {
	return 0x8A
}

// @gen
type AddEntity struct {
	EntityID   int32   `field:"Int"`
	EntityType byte    `field:"Byte"`
	Pos        Vector3 `field:"Vector3"`
	Moved      int32   `field:"Int"`
	Velocity   Vector3 `field:"Vector3"`
}

func (p AddEntity) ID() Opcode {
	return 0x8C
}

// @gen
type RemoveEntity struct {
	EntityID int32 `field:"Int"`
}

func (p RemoveEntity) ID() Opcode {
	return 0x8D
}

// @gen
type TakeItemEntity struct {
	Target   int32 `field:"Int"`
	EntityID int32 `field:"Int"`
}

func (p TakeItemEntity) ID() Opcode {
	return 0x8F
}

// @gen
type MoveEntity struct {
	EntityID int32   `field:"Int"`
	Pos      Vector3 `field:"Vector3"`
}

func (p MoveEntity) ID() Opcode {
	return 0x90
}

// @gen
type MoveEntityPosRot struct {
	EntityID int32   `field:"Int"`
	Pos      Vector3 `field:"Vector3"`
	Yaw      byte    `field:"Byte"`
	Pitch    byte    `field:"Byte"`
}

func (p MoveEntityPosRot) ID() Opcode {
	return 0x93
}

// @gen
type RotateHead struct {
	EntityID int32 `field:"Int"`
	Yaw      byte  `field:"Byte"`
}

func (p RotateHead) ID() Opcode {
	return 0x94
}

// @gen
type EntityEvent struct {
	EntityID int32 `field:"Int"`
	EventID  byte  `field:"Byte"`
}

func (p EntityEvent) ID() Opcode {
	return 0x9D
}

// SetEntityMotion carries velocity components as raw u16 values.
//
// @gen
type SetEntityMotion struct {
	Unk0     byte   `field:"Byte"`
	EntityID int32  `field:"Int"`
	X        uint16 `field:"UnsignedShort"`
	Y        uint16 `field:"UnsignedShort"`
	Z        uint16 `field:"UnsignedShort"`
}

func (p SetEntityMotion) ID() Opcode {
	return 0xA8
}

// @gen
type SetRiding struct {
	EntityID int32 `field:"Int"`
	TargetID int32 `field:"Int"`
}

func (p SetRiding) ID() Opcode {
	return 0xA9
}

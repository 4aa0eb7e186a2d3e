package packet

// SetTime carries the world clock in ticks.
//
// @gen
type SetTime struct {
	Time int32 `field:"Int"`
}

func (p SetTime) ID() Opcode {
	return 0x86
}

// @gen
type StartGame struct {
	WorldSeed        int32   `field:"Int"`
	GeneratorVersion int32   `field:"Int"`
	Gamemode         int32   `field:"Int"`
	EntityID         int32   `field:"Int"`
	Position         Vector3 `field:"Vector3"`
}

func (p StartGame) ID() Opcode {
	return 0x87
}

// Block coordinates put Y last and narrow it to a byte: worlds are 128 blocks tall.

// @gen
type PlaceBlock struct {
	EntityID int32 `field:"Int"`
	X        int32 `field:"Int"`
	Z        int32 `field:"Int"`
	Y        byte  `field:"Byte"`
	Block    byte  `field:"Byte"`
	Meta     byte  `field:"Byte"`
	Face     byte  `field:"Byte"`
}

func (p PlaceBlock) ID() Opcode {
	return 0x96
}

// @gen
type RemoveBlock struct {
	EntityID int32 `field:"Int"`
	X        int32 `field:"Int"`
	Z        int32 `field:"Int"`
	Y        byte  `field:"Byte"`
}

func (p RemoveBlock) ID() Opcode {
	return 0x97
}

// @gen
type UpdateBlock struct {
	EntityID int32 `field:"Int"`
	X        int32 `field:"Int"`
	Z        int32 `field:"Int"`
	Y        byte  `field:"Byte"`
	Block    byte  `field:"Byte"`
	Meta     byte  `field:"Byte"`
}

func (p UpdateBlock) ID() Opcode {
	return 0x98
}

// @gen
type AddPainting struct {
	EntityID  int32  `field:"Int"`
	X         int32  `field:"Int"`
	Y         int32  `field:"Int"`
	Direction int32  `field:"Int"`
	Title     string `field:"String"`
}

func (p AddPainting) ID() Opcode {
	return 0x99
}

// @gen
type Explode struct {
	Pos    Vector3 `field:"Vector3"`
	Radius float32 `field:"Float"`
	Count  int32   `field:"Int"`
}

func (p Explode) ID() Opcode {
	return 0x9A
}

// @gen
type LevelEvent struct {
	EventID uint16 `field:"UnsignedShort"`
	X       uint16 `field:"UnsignedShort"`
	Y       uint16 `field:"UnsignedShort"`
	Z       uint16 `field:"UnsignedShort"`
	Data    int32  `field:"Int"`
}

func (p LevelEvent) ID() Opcode {
	return 0x9B
}

// @gen
type TileEvent struct {
	X     int32 `field:"Int"`
	Y     int32 `field:"Int"`
	Case1 int32 `field:"Int"`
	Case2 int32 `field:"Int"`
}

func (p TileEvent) ID() Opcode {
	return 0x9C
}

// RequestChunk asks for the chunk column at X, Z. The chunk data reply is not
// part of this registry.
//
// @gen
type RequestChunk struct {
	X int32 `field:"Int"`
	Z int32 `field:"Int"`
}

func (p RequestChunk) ID() Opcode {
	return 0x9E
}

// @gen
type SetSpawnPosition struct {
	X int32 `field:"Int"`
	Z int32 `field:"Int"`
	Y byte  `field:"Byte"`
}

func (p SetSpawnPosition) ID() Opcode {
	return 0xAB
}

// SignUpdate replaces the text of the sign at X, Y, Z. Lines holds all four
// lines in one string.
//
// @gen
type SignUpdate struct {
	X     uint16 `field:"UnsignedShort"`
	Y     byte   `field:"Byte"`
	Z     uint16 `field:"UnsignedShort"`
	Lines string `field:"String"`
}

func (p SignUpdate) ID() Opcode {
	return 0xB7
}

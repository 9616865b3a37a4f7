package value

type RoomType string

const (
	RoomTypeSingle  RoomType = "single"
	RoomTypeShared2 RoomType = "shared-2"
	RoomTypeShared4 RoomType = "shared-4"
)

// ParseRoomType is permissive: anything outside the known set falls back to
// a single room rather than failing.
func ParseRoomType(s string) RoomType {
	switch RoomType(s) {
	case RoomTypeSingle, RoomTypeShared2, RoomTypeShared4:
		return RoomType(s)
	default:
		return RoomTypeSingle
	}
}

func (t RoomType) String() string {
	return string(t)
}

// MaxSharing is the occupant capacity of the room type.
func (t RoomType) MaxSharing() int {
	switch t {
	case RoomTypeShared2:
		return 2
	case RoomTypeShared4:
		return 4
	default:
		return 1
	}
}

// TotalPriceFactor is the whole-room price relative to a single room.
// A shared-2 room costs 60% more than a single, a shared-4 140% more,
// so the per-occupant price drops as sharing grows.
func (t RoomType) TotalPriceFactor() float64 {
	switch t {
	case RoomTypeShared2:
		return 1.6
	case RoomTypeShared4:
		return 2.4
	default:
		return 1.0
	}
}

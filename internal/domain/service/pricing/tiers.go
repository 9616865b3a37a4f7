package pricing

import (
	"fmt"
	"strings"

	"unistay/internal/domain/entity"
	"unistay/internal/domain/value"
)

// distanceCategory buckets the distance to campus into a pricing tier.
// Walking distance (0.5-2km) carries a 30% premium, 2-6km is the reference
// band, everything else is discounted 20%.
func distanceCategory(distanceKm float64) entity.LocationInfo {
	switch {
	case distanceKm >= 0.5 && distanceKm <= 2:
		return entity.LocationInfo{
			Category:    "Premium Location",
			Description: "Walking distance to university, prime location",
			Factor:      1.3,
		}
	case distanceKm > 2 && distanceKm <= 6:
		return entity.LocationInfo{
			Category:    "Standard Location",
			Description: "Convenient distance, good transport options",
			Factor:      1.0,
		}
	default:
		return entity.LocationInfo{
			Category:    "Budget Location",
			Description: "Further from university, more affordable",
			Factor:      0.8,
		}
	}
}

// roomInfo derives the sharing factors and display tag for a room
// configuration. NumSharing is assumed already validated against the room
// type's capacity.
func roomInfo(roomType value.RoomType, numSharing int) entity.RoomInfo {
	total := roomType.TotalPriceFactor()

	return entity.RoomInfo{
		Description: fmt.Sprintf("%s (%d of %d sharing)",
			roomTypeTitle(roomType), numSharing, roomType.MaxSharing()),
		TotalPriceFactor: total,
		PerPersonFactor:  total / float64(numSharing),
		MaxSharing:       roomType.MaxSharing(),
	}
}

// roomTypeTitle renders "shared-2" as "Shared 2".
func roomTypeTitle(roomType value.RoomType) string {
	words := strings.Split(strings.ReplaceAll(roomType.String(), "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

package pricing

import (
	"fmt"

	"unistay/internal/domain"
	"unistay/internal/domain/entity"
	"unistay/internal/domain/value"
	"unistay/pkg/errcodes"
)

// Attributes is the loosely-typed bag a caller assembles from a form
// submission. Optional numeric fields are pointers so "absent" and "zero"
// stay distinguishable.
type Attributes struct {
	RoomType   string
	NumSharing *int
	Location   LocationAttributes
	Amenities  AmenityAttributes
	Reviews    ReviewAttributes
}

type LocationAttributes struct {
	University          string
	DistanceToUni       *float64
	DistanceToTransport *float64
	SafetyScore         *int
	IsMainRoad          bool
	IsResidentialArea   bool
}

type AmenityAttributes struct {
	HasWifi             bool
	HasAttachedBathroom bool
	HasAC               bool
	HasKitchen          bool
	HasLaundry          bool
	HasParking          bool
	MealsProvided       bool
	HasStudyTable       bool
	HasCupboard         bool
}

type ReviewAttributes struct {
	OverallRating        *float64
	NumReviews           *int
	LandlordResponseTime *float64
	ValueRating          *float64
	MaintenanceRating    *float64
	CleanlinessRating    *float64
}

// Default values applied to absent optional fields. A missing field never
// fails normalization; only values that cannot be defaulted away (negative
// distances, impossible sharing counts) do.
const (
	defaultDistanceKm      = 0.0
	defaultSafetyScore     = 5
	defaultOverallRating   = 3.0
	defaultNumReviews      = 0
	defaultResponseTimeHrs = 1.0
	defaultSubRating       = 3.0
	defaultNumSharing      = 1
)

// Normalize validates and coerces raw attributes into a canonical profile.
// It fails fast with a field-naming error; it never returns a partial
// profile.
func Normalize(in Attributes) (entity.PropertyProfile, error) {
	roomType := value.ParseRoomType(in.RoomType)

	numSharing := valueOr(in.NumSharing, defaultNumSharing)
	if numSharing < 1 {
		return entity.PropertyProfile{}, domain.NewError(errcodes.InvalidNumSharing,
			fmt.Sprintf("num_sharing must be at least 1, got %d", numSharing))
	}
	if numSharing > roomType.MaxSharing() {
		return entity.PropertyProfile{}, domain.NewError(errcodes.InvalidNumSharing,
			fmt.Sprintf("num_sharing: maximum %d students allowed for %s", roomType.MaxSharing(), roomType))
	}

	location, err := normalizeLocation(in.Location)
	if err != nil {
		return entity.PropertyProfile{}, err
	}

	return entity.PropertyProfile{
		RoomType:   roomType,
		NumSharing: numSharing,
		Location:   location,
		Amenities: entity.Amenities{
			Wifi:             in.Amenities.HasWifi,
			AttachedBathroom: in.Amenities.HasAttachedBathroom,
			AC:               in.Amenities.HasAC,
			Kitchen:          in.Amenities.HasKitchen,
			Laundry:          in.Amenities.HasLaundry,
			Parking:          in.Amenities.HasParking,
			MealsProvided:    in.Amenities.MealsProvided,
			StudyTable:       in.Amenities.HasStudyTable,
			Cupboard:         in.Amenities.HasCupboard,
		},
		Reviews: normalizeReviews(in.Reviews),
	}, nil
}

func normalizeLocation(in LocationAttributes) (entity.Location, error) {
	distanceToUni := valueOr(in.DistanceToUni, defaultDistanceKm)
	if distanceToUni < 0 {
		return entity.Location{}, domain.NewError(errcodes.InvalidDistance,
			"location.distance_to_uni must not be negative")
	}

	distanceToTransport := valueOr(in.DistanceToTransport, defaultDistanceKm)
	if distanceToTransport < 0 {
		return entity.Location{}, domain.NewError(errcodes.InvalidDistance,
			"location.distance_to_transport must not be negative")
	}

	safety := valueOr(in.SafetyScore, defaultSafetyScore)
	safety = max(1, min(safety, 10))

	return entity.Location{
		University:            in.University,
		DistanceToUniKm:       distanceToUni,
		DistanceToTransportKm: distanceToTransport,
		SafetyScore:           safety,
		IsMainRoad:            in.IsMainRoad,
		IsResidentialArea:     in.IsResidentialArea,
	}, nil
}

func normalizeReviews(in ReviewAttributes) entity.Reviews {
	return entity.Reviews{
		OverallRating:           clamp(valueOr(in.OverallRating, defaultOverallRating), 1, 5),
		NumReviews:              max(0, valueOr(in.NumReviews, defaultNumReviews)),
		LandlordResponseTimeHrs: max(0, valueOr(in.LandlordResponseTime, defaultResponseTimeHrs)),
		ValueRating:             clamp(valueOr(in.ValueRating, defaultSubRating), 1, 5),
		MaintenanceRating:       clamp(valueOr(in.MaintenanceRating, defaultSubRating), 1, 5),
		CleanlinessRating:       clamp(valueOr(in.CleanlinessRating, defaultSubRating), 1, 5),
	}
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

package scoring

import (
	"fll/app_error"
	"fll/repository"
)

// Generic labels of the default scale, also used by the scoring form when an
// aspect has numbered levels without custom wording.
var defaultLevelLabels = map[int]string{
	1: "Básico",
	2: "En Desarrollo",
	3: "Cumplido",
	4: "Superado",
}

// DefaultLevels is the degraded-mode scale for aspects whose levels were never
// configured by an admin: levels 1..4 worth 1..4 points. Judges can keep
// scoring while the configuration is incomplete.
func DefaultLevels(aspectId int) []*repository.Level {
	levels := make([]*repository.Level, 0, 4)
	for number := 1; number <= 4; number++ {
		levels = append(levels, &repository.Level{
			AspectId:    aspectId,
			Number:      number,
			Description: defaultLevelLabels[number],
			Points:      number,
			Order:       number,
			Active:      true,
		})
	}
	return levels
}

// LevelLabel returns the generic label of a level number, empty when outside
// the default scale.
func LevelLabel(number int) string {
	return defaultLevelLabels[number]
}

// ResolvePoints looks up the points of a level number within an aspect's
// configured levels, falling back to the default scale when none exist. A
// number absent from both ranges signals a corrupt score record and yields a
// ConfigurationError, which views surface as a warning rather than dropping
// the row.
func ResolvePoints(aspectId int, levels []*repository.Level, number int) (int, error) {
	if len(levels) == 0 {
		levels = DefaultLevels(aspectId)
	}
	for _, level := range levels {
		if level.Number == number {
			return level.Points, nil
		}
	}
	return 0, &app_error.ConfigurationError{AspectId: aspectId, Level: number}
}

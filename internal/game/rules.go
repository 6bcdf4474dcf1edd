package game

const (
	// ExpPerLevel scales the experience needed to leave a level: a player at
	// level L needs L*ExpPerLevel.
	ExpPerLevel = 100

	// BaseFlux is the flux pool of a race that does not set its own.
	BaseFlux = 100
	// FluxPerInt is the flux pool gained per point of INT.
	FluxPerInt = 5
	// FluxRegenPercent of max flux is regained each round a fight continues.
	FluxRegenPercent = 10

	// HPPerVit is the max HP granted per point of VIT.
	HPPerVit = 10
	// RevivePercent of max HP is restored on death.
	RevivePercent = 50

	// WishLevels is the number of levels granted by a wish.
	WishLevels = 5
	// StartingCurrency is given to every new character.
	StartingCurrency = 100

	// BaseForm is the untransformed state every character starts in.
	BaseForm = "Base"
)

// WishShards are the items consumed by a wish, one of each.
var WishShards = []string{
	"cosmic_shard_1",
	"cosmic_shard_2",
	"cosmic_shard_3",
	"cosmic_shard_4",
	"cosmic_shard_5",
	"cosmic_shard_6",
	"cosmic_shard_7",
}

// ExpToNextLevel returns the experience a player needs to leave level.
func ExpToNextLevel(level int) int {
	return level * ExpPerLevel
}

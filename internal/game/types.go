// Package game implements the side-scrolling platformer simulation:
// procedural level generation, the player and enemy entity models, combat
// resolution, and round progression. The package is presentation-free;
// callers drive it one frame at a time through Step and read state back
// for rendering.
package game

import (
	"github.com/catnip-games/omas-adventure/internal/core"
)

// PlatformKind identifies what a platform is drawn as. Collision treats
// every kind the same; only rendering differs.
type PlatformKind int

const (
	PlatformFloor PlatformKind = iota
	PlatformTable
	PlatformSofa
	PlatformChair
	PlatformBookshelf
	PlatformLeatherCouch
	PlatformGreyCouch
	PlatformShelf
	PlatformWindowsill
	PlatformBedWall // invisible wall sealing the level end behind the bed
)

// furnitureKinds are the visual variants the generator picks from for
// free-standing furniture platforms.
var furnitureKinds = []PlatformKind{
	PlatformTable,
	PlatformSofa,
	PlatformChair,
	PlatformBookshelf,
	PlatformLeatherCouch,
	PlatformGreyCouch,
}

// Platform is a static landable surface. Immutable after generation.
type Platform struct {
	Rect core.Rect
	Kind PlatformKind
}

// CharacterName identifies one of the three playable cats.
type CharacterName string

const (
	CharShoogie  CharacterName = "Shoogie"
	CharFlorence CharacterName = "Florence"
	CharSue      CharacterName = "Sue"
)

// AttackKind identifies a character's attack.
type AttackKind int

const (
	AttackMeow AttackKind = iota
	AttackHairball
	AttackPound
)

// Character is a roster entry. Lives are per character and are set to the
// configured count when the character joins the roster.
type Character struct {
	Name     CharacterName
	Attack   AttackKind
	JumpMult float64
	Lives    int
}

// CollectibleKind distinguishes the touchable pickups in a level.
type CollectibleKind int

const (
	CollectTreat CollectibleKind = iota
	CollectPlant
	CollectCharacter
)

// Collectible is a touch-once pickup. Collected latches on first contact
// and is never reset, so no pickup can be scored twice.
type Collectible struct {
	Rect      core.Rect
	Kind      CollectibleKind
	Character CharacterName // which cat a CollectCharacter pickup unlocks
	Collected bool
	BobTimer  float64 // cosmetic hover phase, character pickups only
}

// EnemyKind identifies an enemy's movement pattern.
type EnemyKind int

const (
	EnemyHorizontal EnemyKind = iota
	EnemyVertical
	EnemyCircular
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyHorizontal:
		return "horizontal"
	case EnemyVertical:
		return "vertical"
	case EnemyCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// Level is the static world for one round: platforms, collectibles, and
// the bed that ends it. Enemies live on the Game because they regenerate
// wholesale whenever the player takes damage.
type Level struct {
	Length       int
	Platforms    []Platform // bed wall appended last
	Collectibles []Collectible
	Bed          core.Rect
}

// Package restructure reorganizes the GalaxySprawl source tree from its old
// layout into the new one: it creates the target directory skeleton, applies
// the old-path to new-path move table, sorts the loose stylesheets under
// src/styles into bucket subdirectories, and backs the whole tree up before
// touching anything so a failed run can be rolled back.
package restructure

// Move is one planned relocation from an old path to a new path, both
// relative to the project root.
type Move struct {
	From string
	To   string
}

// TargetDirs is the new directory skeleton, created before any move. Paths
// are relative to the project root and ordered parent-first.
var TargetDirs = []string{
	// Types
	"src/types",
	"src/types/factions",
	"src/types/ships",
	"src/types/combat",
	"src/types/ui",

	// Config
	"src/config",
	"src/config/factions",
	"src/config/ships",
	"src/config/combat",
	"src/config/game",

	// Components
	"src/components",
	"src/components/ships",
	"src/components/ships/common",
	"src/components/ships/player",
	"src/components/ships/player/prefabs",
	"src/components/ships/player/controls",
	"src/components/ships/factions",
	"src/components/ships/factions/spaceRats",
	"src/components/ships/factions/lostNova",
	"src/components/ships/factions/equatorHorizon",
	"src/components/combat",
	"src/components/ui",
	"src/components/colony",
	"src/components/mining",
	"src/components/exploration",
	"src/components/visual",
	"src/components/debug",

	// Effects
	"src/effects",
	"src/effects/combat",
	"src/effects/visual",
	"src/effects/particles",

	// Hooks
	"src/hooks",
	"src/hooks/factions",
	"src/hooks/combat",
	"src/hooks/ui",
	"src/hooks/game",
	"src/hooks/debug",

	// Lib
	"src/lib",
	"src/lib/factions",
	"src/lib/combat",
	"src/lib/ai",
	"src/lib/game",

	// Utils
	"src/utils",
	"src/utils/math",
	"src/utils/types",

	// Contexts
	"src/contexts",

	// Styles
	"src/styles",
	"src/styles/components",
	"src/styles/effects",
	"src/styles/ui",
}

// FileMoves is the explicit old-path to new-path table. It is an ordered
// slice rather than a map so runs process (and report) entries in a stable
// order.
var FileMoves = []Move{
	// Types
	{"src/components/factions/types/FactionTypes.ts", "src/types/factions/FactionTypes.ts"},
	{"src/components/factions/types/ShipTypes.ts", "src/types/ships/ShipTypes.ts"},
	{"src/components/factions/types/CombatTypes.ts", "src/types/combat/CombatTypes.ts"},
	{"src/components/factions/factionTypes/ship.ts", "src/types/ships/ship.ts"},
	{"src/components/factions/types/index.ts", "src/types/index.ts"},
	{"src/components/factions/types/common.ts", "src/types/common.ts"},
	{"src/components/factions/types/UITypes.ts", "src/types/ui/UITypes.ts"},

	// Config
	{"src/components/factions/config/factionConfig.ts", "src/config/factions/factionConfig.ts"},
	{"src/components/factions/config/shipStats.ts", "src/config/ships/shipStats.ts"},
	{"src/components/factions/config/weaponConfig.ts", "src/config/combat/weaponConfig.ts"},
	{"src/components/factions/config/factionShipStats.ts", "src/config/factions/factionShipStats.ts"},
	{"src/config/playerShipStats.ts", "src/config/ships/playerShipStats.ts"},

	// Components: ship base
	{"src/components/factions/ships/components/ShipBase.tsx", "src/components/ships/common/ShipBase.tsx"},
	{"src/components/factions/ships/components/WeaponMount.tsx", "src/components/ships/common/WeaponMount.tsx"},
	{"src/components/ships/common/ShipStats.tsx", "src/components/ships/common/ShipStats.tsx"},
	{"src/components/ships/common/ShipControls.tsx", "src/components/ships/common/ShipControls.tsx"},
	{"src/components/ships/common/ShipHealth.tsx", "src/components/ships/common/ShipHealth.tsx"},
	{"src/components/ships/common/ShipShields.tsx", "src/components/ships/common/ShipShields.tsx"},
	{"src/components/ships/common/ShipWeapons.tsx", "src/components/ships/common/ShipWeapons.tsx"},

	// Components: player ships
	{"src/components/playerShips/WarShipCombat.tsx", "src/components/ships/player/WarShipCombat.tsx"},
	{"src/components/playerShips/PlayerShipControls.tsx", "src/components/ships/player/controls/PlayerShipControls.tsx"},
	{"src/components/playerShips/PlayerWeaponControls.tsx", "src/components/ships/player/controls/PlayerWeaponControls.tsx"},

	// Components: space rats ships
	{"src/components/factions/ships/spaceRats/RatKing.tsx", "src/components/ships/factions/spaceRats/RatKing.tsx"},
	{"src/components/factions/ships/spaceRats/AsteroidMarauder.tsx", "src/components/ships/factions/spaceRats/AsteroidMarauder.tsx"},
	{"src/components/factions/ships/spaceRats/RogueNebula.tsx", "src/components/ships/factions/spaceRats/RogueNebula.tsx"},

	// Components: lost nova ships
	{"src/components/factions/ships/lostNova/EclipseScythe.tsx", "src/components/ships/factions/lostNova/EclipseScythe.tsx"},
	{"src/components/factions/ships/lostNova/DarkMatterReaper.tsx", "src/components/ships/factions/lostNova/DarkMatterReaper.tsx"},
	{"src/components/factions/ships/lostNova/NullHunter.tsx", "src/components/ships/factions/lostNova/NullHunter.tsx"},

	// Components: equator horizon ships
	{"src/components/factions/ships/equatorHorizon/CelestialArbiter.tsx", "src/components/ships/factions/equatorHorizon/CelestialArbiter.tsx"},
	{"src/components/factions/ships/equatorHorizon/EtherealGalleon.tsx", "src/components/ships/factions/equatorHorizon/EtherealGalleon.tsx"},
	{"src/components/factions/ships/equatorHorizon/StellarEquinox.tsx", "src/components/ships/factions/equatorHorizon/StellarEquinox.tsx"},

	// Components: faction UI
	{"src/components/factions/FactionAI.tsx", "src/components/ships/factions/FactionAI.tsx"},
	{"src/components/factions/FactionFleet.tsx", "src/components/ships/factions/FactionFleet.tsx"},
	{"src/components/factions/FactionManager.tsx", "src/components/ships/factions/FactionManager.tsx"},
	{"src/components/factions/SpaceRatShip.tsx", "src/components/ships/factions/spaceRats/SpaceRatShip.tsx"},
	{"src/components/factions/LostNovaShip.tsx", "src/components/ships/factions/lostNova/LostNovaShip.tsx"},
	{"src/components/factions/EquatorHorizonShip.tsx", "src/components/ships/factions/equatorHorizon/EquatorHorizonShip.tsx"},

	// Components: combat
	{"src/components/combat/CombatManager.tsx", "src/components/combat/CombatManager.tsx"},
	{"src/components/combat/CombatUI.tsx", "src/components/combat/CombatUI.tsx"},
	{"src/components/combat/DamageIndicator.tsx", "src/components/combat/DamageIndicator.tsx"},
	{"src/components/combat/TargetingSystem.tsx", "src/components/combat/TargetingSystem.tsx"},
	{"src/components/combat/WeaponSystem.tsx", "src/components/combat/WeaponSystem.tsx"},
	{"src/components/combat/ShieldSystem.tsx", "src/components/combat/ShieldSystem.tsx"},
	{"src/components/combat/PowerSystem.tsx", "src/components/combat/PowerSystem.tsx"},
	{"src/components/combat/SalvageSystem.tsx", "src/components/combat/SalvageSystem.tsx"},

	// Components: UI
	{"src/components/ui/ShipCard.tsx", "src/components/ui/ShipCard.tsx"},
	{"src/components/ui/WeaponCard.tsx", "src/components/ui/WeaponCard.tsx"},
	{"src/components/ui/StatusBar.tsx", "src/components/ui/StatusBar.tsx"},
	{"src/components/ui/ResourceDisplay.tsx", "src/components/ui/ResourceDisplay.tsx"},
	{"src/components/ui/Tooltip.tsx", "src/components/ui/Tooltip.tsx"},
	{"src/components/ui/Modal.tsx", "src/components/ui/Modal.tsx"},

	// Effects
	{"src/components/effects/WeaponEffect.tsx", "src/effects/combat/WeaponEffect.tsx"},
	{"src/components/effects/ExplosionEffect.tsx", "src/effects/combat/ExplosionEffect.tsx"},
	{"src/components/effects/ShieldEffect.tsx", "src/effects/combat/ShieldEffect.tsx"},
	{"src/components/effects/ThrusterEffect.tsx", "src/effects/visual/ThrusterEffect.tsx"},
	{"src/components/effects/SmokeTrailEffect.tsx", "src/effects/visual/SmokeTrailEffect.tsx"},

	// Hooks
	{"src/components/factions/factionHooks/useFactionBehavior.ts", "src/hooks/factions/useFactionBehavior.ts"},
	{"src/components/factions/factionHooks/useFactionAI.ts", "src/hooks/factions/useFactionAI.ts"},
	{"src/components/factions/factionHooks/useEnemyAI.ts", "src/hooks/factions/useEnemyAI.ts"},
	{"src/hooks/useFleetAI.ts", "src/hooks/factions/useFleetAI.ts"},
	{"src/hooks/useAdaptiveAI.ts", "src/hooks/factions/useAdaptiveAI.ts"},
	{"src/hooks/useCombatSystem.ts", "src/hooks/combat/useCombatSystem.ts"},
	{"src/hooks/useTooltip.ts", "src/hooks/ui/useTooltip.ts"},
	{"src/hooks/useGameState.ts", "src/hooks/game/useGameState.ts"},

	// Lib
	{"src/components/factions/factionLib/factionManager.ts", "src/lib/factions/factionManager.ts"},
	{"src/lib/combatManager.ts", "src/lib/combat/combatManager.ts"},
	{"src/lib/gameManager.ts", "src/lib/game/gameManager.ts"},
	{"src/lib/ai/behaviorTree.ts", "src/lib/ai/behaviorTree.ts"},
	{"src/lib/ai/pathfinding.ts", "src/lib/ai/pathfinding.ts"},
	{"src/lib/ai/decisionMaking.ts", "src/lib/ai/decisionMaking.ts"},
	{"src/lib/factions/factionAI.ts", "src/lib/factions/factionAI.ts"},
	{"src/lib/factions/fleetManager.ts", "src/lib/factions/fleetManager.ts"},
	{"src/lib/combat/weaponSystem.ts", "src/lib/combat/weaponSystem.ts"},
	{"src/lib/combat/damageCalculator.ts", "src/lib/combat/damageCalculator.ts"},
	{"src/lib/game/saveManager.ts", "src/lib/game/saveManager.ts"},
	{"src/lib/game/resourceManager.ts", "src/lib/game/resourceManager.ts"},

	// Utils
	{"src/utils/math.ts", "src/utils/math.ts"},
	{"src/utils/idGenerator.ts", "src/utils/idGenerator.ts"},
	{"src/utils/helpers.ts", "src/utils/helpers.ts"},
	{"src/utils/constants.ts", "src/utils/constants.ts"},
	{"src/utils/types.ts", "src/utils/types.ts"},

	// Contexts
	{"src/contexts/GameContext.tsx", "src/contexts/GameContext.tsx"},
	{"src/contexts/ThresholdContext.tsx", "src/contexts/ThresholdContext.tsx"},
	{"src/contexts/CombatContext.tsx", "src/contexts/CombatContext.tsx"},
	{"src/contexts/FactionContext.tsx", "src/contexts/FactionContext.tsx"},

	// Loose stylesheets under src/styles are handled by ReorganizeStyles.
}

// ReviewFiles are files that need a human decision before or after the
// restructuring. They are never moved, only flagged.
var ReviewFiles = []string{
	"src/contexts/ThresholdTypes.ts",
	"src/components/factions/DiplomacyPanel.tsx", // should this move to ui/?
	"src/components/debug/AIDebugOverlay.tsx",    // keep debug components?
	"src/hooks/useDebugOverlay.ts",               // keep debug hooks?
	"src/components/factions/types/index.ts",     // still needed after restructure?
}

// StylesDir is the directory whose loose stylesheets get sorted into bucket
// subdirectories.
const StylesDir = "src/styles"

// StyleBuckets are the stylesheet classification rules, checked in order
// against the lowercased filename. The first rule with a matching keyword
// wins; filenames matching no rule land in DefaultStyleBucket.
var StyleBuckets = []BucketRule{
	{Keywords: []string{"effects", "vpr-effects"}, Subdir: "effects"},
	{Keywords: []string{"ui", "vpr-system"}, Subdir: "ui"},
}

// DefaultStyleBucket is where stylesheets matching no bucket rule go.
const DefaultStyleBucket = "components"

// RequiredDirs must exist under the project root for a run to start at all.
var RequiredDirs = []string{
	"src",
	"src/components",
	"src/components/factions",
}

package itemtype

import "github.com/joshuapare/blockbag/pkg/types"

// Block and item IDs that other packages and tests refer to by name.
const (
	Air         types.ItemKind = 0
	Stone       types.ItemKind = 1
	Grass       types.ItemKind = 2
	Dirt        types.ItemKind = 3
	Cobblestone types.ItemKind = 4
	Planks      types.ItemKind = 5
	Sapling     types.ItemKind = 6
	Sand        types.ItemKind = 12
	Gravel      types.ItemKind = 13
	Log         types.ItemKind = 17
	Leaves      types.ItemKind = 18
	Glass       types.ItemKind = 20
	Sandstone   types.ItemKind = 24
	LongGrass   types.ItemKind = 31
	Wool        types.ItemKind = 35
	DoubleStep  types.ItemKind = 43
	Step        types.ItemKind = 44
	Brick       types.ItemKind = 45
	TNT         types.ItemKind = 46
	Torch       types.ItemKind = 50
	Chest       types.ItemKind = 54
	StoneBrick  types.ItemKind = 98
	IronShovel  types.ItemKind = 256
	IronPickaxe types.ItemKind = 257
	Coal        types.ItemKind = 263
	Dye         types.ItemKind = 351
	Potion      types.ItemKind = 373
	SpawnEgg    types.ItemKind = 383
)

var defaultInfos = []Info{
	{Kind: Air, Name: "air"},
	{Kind: Stone, Name: "stone", Aliases: []string{"rock"}},
	{Kind: Grass, Name: "grass"},
	{Kind: Dirt, Name: "dirt"},
	{Kind: Cobblestone, Name: "cobblestone", Aliases: []string{"cobble"}},
	{Kind: Planks, Name: "planks", Aliases: []string{"wood"}, UsesVariant: true},
	{Kind: Sapling, Name: "sapling", UsesVariant: true},
	{Kind: 7, Name: "bedrock", Aliases: []string{"adminium"}},
	{Kind: 8, Name: "water"},
	{Kind: 10, Name: "lava"},
	{Kind: Sand, Name: "sand"},
	{Kind: Gravel, Name: "gravel"},
	{Kind: 14, Name: "gold_ore"},
	{Kind: 15, Name: "iron_ore"},
	{Kind: 16, Name: "coal_ore"},
	{Kind: Log, Name: "log", Aliases: []string{"trunk"}, UsesVariant: true},
	{Kind: Leaves, Name: "leaves", UsesVariant: true},
	{Kind: 19, Name: "sponge"},
	{Kind: Glass, Name: "glass"},
	{Kind: 21, Name: "lapis_ore"},
	{Kind: 22, Name: "lapis_block"},
	{Kind: Sandstone, Name: "sandstone", UsesVariant: true},
	{Kind: LongGrass, Name: "long_grass", Aliases: []string{"tall_grass"}, UsesVariant: true},
	{Kind: Wool, Name: "wool", Aliases: []string{"cloth"}, UsesVariant: true},
	{Kind: 41, Name: "gold_block"},
	{Kind: 42, Name: "iron_block"},
	{Kind: DoubleStep, Name: "double_step", Aliases: []string{"double_slab"}, UsesVariant: true},
	{Kind: Step, Name: "step", Aliases: []string{"slab"}, UsesVariant: true},
	{Kind: Brick, Name: "brick"},
	{Kind: TNT, Name: "tnt"},
	{Kind: 47, Name: "bookshelf"},
	{Kind: 48, Name: "mossy_cobblestone"},
	{Kind: 49, Name: "obsidian"},
	{Kind: Torch, Name: "torch"},
	{Kind: Chest, Name: "chest"},
	{Kind: 57, Name: "diamond_block"},
	{Kind: 58, Name: "workbench", Aliases: []string{"crafting_table"}},
	{Kind: 61, Name: "furnace"},
	{Kind: 65, Name: "ladder"},
	{Kind: 79, Name: "ice"},
	{Kind: 82, Name: "clay"},
	{Kind: 85, Name: "fence"},
	{Kind: 87, Name: "netherrack"},
	{Kind: 89, Name: "glowstone"},
	{Kind: StoneBrick, Name: "stone_brick", Aliases: []string{"smooth_brick"}, UsesVariant: true},
	{Kind: 102, Name: "glass_pane"},
	{Kind: 112, Name: "nether_brick"},
	{Kind: IronShovel, Name: "iron_shovel"},
	{Kind: IronPickaxe, Name: "iron_pickaxe"},
	{Kind: Coal, Name: "coal", UsesVariant: true},
	{Kind: Dye, Name: "dye", Aliases: []string{"ink_sack"}, UsesVariant: true},
	{Kind: Potion, Name: "potion", UsesVariant: true},
	{Kind: SpawnEgg, Name: "spawn_egg", UsesVariant: true},
}

// Default returns the built-in registry.
func Default() *Registry {
	return New(defaultInfos...)
}

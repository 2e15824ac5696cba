package domain

// Color - цвет RGB для клиента рендера.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Theme - косметическое описание области: имена текстур, палитра,
// словарь врагов. Ядро эти поля не интерпретирует.
type Theme struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PrimaryColor   Color    `json:"primaryColor"`
	SecondaryColor Color    `json:"secondaryColor"`
	FloorTexture   string   `json:"floorTexture"`
	WallTexture    string   `json:"wallTexture"`
	EnemyTypes     []string `json:"enemyTypes"`
}

// areaThemes - фиксированные темы семи кругов ада.
var areaThemes = []Theme{
	{
		Name:           "The Gates of Hell",
		Description:    "The entrance to the underworld, a desolate wasteland with fire and brimstone.",
		PrimaryColor:   Color{139, 0, 0},
		SecondaryColor: Color{210, 105, 30},
		FloorTexture:   "stone_floor",
		WallTexture:    "hell_wall_1",
		EnemyTypes:     []string{"lesser_demon", "imp", "hellhound"},
	},
	{
		Name:           "The Burning Plains",
		Description:    "Endless plains of fire and suffering.",
		PrimaryColor:   Color{178, 34, 34},
		SecondaryColor: Color{255, 140, 0},
		FloorTexture:   "burning_floor",
		WallTexture:    "hell_wall_2",
		EnemyTypes:     []string{"tormentor", "fallen_soul", "abyssal_beast"},
	},
	{
		Name:           "The Frozen Depths",
		Description:    "A realm of biting cold and frozen souls.",
		PrimaryColor:   Color{70, 130, 180},
		SecondaryColor: Color{176, 196, 222},
		FloorTexture:   "ice_floor",
		WallTexture:    "ice_wall",
		EnemyTypes:     []string{"vengeful_spirit", "corrupted_angel", "flame_demon"},
	},
	{
		Name:           "The Abyss of Pain",
		Description:    "A cavernous realm where suffering is endless.",
		PrimaryColor:   Color{128, 0, 128},
		SecondaryColor: Color{75, 0, 130},
		FloorTexture:   "flesh_floor",
		WallTexture:    "flesh_wall",
		EnemyTypes:     []string{"pain_bringer", "shadow_lurker", "despair_wraith"},
	},
	{
		Name:           "The Void of Souls",
		Description:    "An empty void where souls drift in eternal darkness.",
		PrimaryColor:   Color{25, 25, 112},
		SecondaryColor: Color{0, 0, 139},
		FloorTexture:   "void_floor",
		WallTexture:    "void_wall",
		EnemyTypes:     []string{"soul_eater", "void_spawn", "infernal_beast"},
	},
	{
		Name:           "The Fallen Kingdom",
		Description:    "The ruined kingdom of those who once defied the heavens.",
		PrimaryColor:   Color{72, 61, 139},
		SecondaryColor: Color{106, 90, 205},
		FloorTexture:   "marble_floor",
		WallTexture:    "ruined_wall",
		EnemyTypes:     []string{"archfiend", "dark_seraph", "hell_knight"},
	},
	{
		Name:           "Satan's Throne",
		Description:    "The final level, home to the ruler of hell.",
		PrimaryColor:   Color{128, 0, 0},
		SecondaryColor: Color{255, 215, 0},
		FloorTexture:   "throne_floor",
		WallTexture:    "throne_wall",
		EnemyTypes:     []string{"demon_lord", "fallen_archangel", "apocalypse_beast"},
	},
}

// ThemeForArea возвращает тему области по индексу.
// Индексы за пределами таблицы прижимаются к последней теме.
func ThemeForArea(areaIndex int) Theme {
	if areaIndex < 0 {
		areaIndex = 0
	}
	if areaIndex >= len(areaThemes) {
		areaIndex = len(areaThemes) - 1
	}
	return areaThemes[areaIndex]
}

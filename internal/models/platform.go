package models

// PlatformID is the storage code of a platform. Only codes present in
// Platforms are valid.
type PlatformID string

const (
	PlatformPlayStation5    PlatformID = "PLAYSTATION_5"
	PlatformXboxSeries      PlatformID = "XBOX_SERIES"
	PlatformNintendo3DS     PlatformID = "NINTENDO_3DS"
	PlatformNintendoSwitch  PlatformID = "NINTENDO_SWITCH"
	PlatformNintendoWiiU    PlatformID = "NINTENDO_WII_U"
	PlatformPlayStation4    PlatformID = "PLAYSTATION_4"
	PlatformPlayStationVita PlatformID = "PLAYSTATION_VITA"
	PlatformXboxOne         PlatformID = "XBOX_ONE"
	PlatformNintendoDS      PlatformID = "NINTENDO_DS"
	PlatformNintendoWii     PlatformID = "NINTENDO_WII"
	PlatformPlayStation3    PlatformID = "PLAYSTATION_3"
	PlatformPSP             PlatformID = "PSP"
	PlatformXbox360         PlatformID = "XBOX_360"
	PlatformDreamcast       PlatformID = "DREAMCAST"
	PlatformGameBoyAdvance  PlatformID = "GAME_BOY_ADVANCE"
	PlatformGameCube        PlatformID = "GAMECUBE"
	PlatformPlayStation2    PlatformID = "PLAYSTATION_2"
	PlatformXbox            PlatformID = "XBOX"
	PlatformAtariJaguar     PlatformID = "ATARI_JAGUAR"
	PlatformGameBoyColor    PlatformID = "GAME_BOY_COLOR"
	PlatformNintendo64      PlatformID = "NINTENDO_64"
	PlatformPlayStation     PlatformID = "PLAYSTATION"
	PlatformSaturn          PlatformID = "SATURN"
	PlatformGameBoy         PlatformID = "GAME_BOY"
	PlatformMegaDrive       PlatformID = "MEGA_DRIVE"
	PlatformSuperNintendo   PlatformID = "SUPER_NINTENDO"
	PlatformAtari7800       PlatformID = "ATARI_7800"
	PlatformMasterSystem    PlatformID = "MASTER_SYSTEM"
	PlatformNES             PlatformID = "NES"
	PlatformAtari2600       PlatformID = "ATARI_2600"
	PlatformWindows         PlatformID = "WINDOWS"
	PlatformMacOS           PlatformID = "MAC_OS"
)

// Platform is a catalog entry. Generation is -1 for personal computers.
type Platform struct {
	ID         PlatformID
	Name       string
	IconName   string
	Generation int
	// IGDBID is the platform id used by the remote metadata service, 0 when unknown.
	IGDBID int
}

// Platforms is the closed platform catalog, newest generation first.
var Platforms = []Platform{
	{ID: PlatformMacOS, Name: "macOS", IconName: "mac-os", Generation: -1, IGDBID: 14},
	{ID: PlatformWindows, Name: "Windows", IconName: "windows", Generation: -1, IGDBID: 6},

	{ID: PlatformPlayStation5, Name: "PlayStation 5", IconName: "playstation", Generation: 9, IGDBID: 167},
	{ID: PlatformXboxSeries, Name: "Xbox Series", IconName: "xbox", Generation: 9, IGDBID: 169},

	{ID: PlatformNintendo3DS, Name: "Nintendo 3DS", IconName: "nintendo-3ds", Generation: 8, IGDBID: 37},
	{ID: PlatformNintendoSwitch, Name: "Nintendo Switch", IconName: "nintendo-switch", Generation: 8, IGDBID: 130},
	{ID: PlatformNintendoWiiU, Name: "Nintendo Wii U", IconName: "wii-u", Generation: 8, IGDBID: 41},
	{ID: PlatformPlayStation4, Name: "PlayStation 4", IconName: "playstation", Generation: 8, IGDBID: 48},
	{ID: PlatformPlayStationVita, Name: "PlayStation Vita", IconName: "playstation", Generation: 8, IGDBID: 46},
	{ID: PlatformXboxOne, Name: "Xbox One", IconName: "xbox", Generation: 8, IGDBID: 49},

	{ID: PlatformNintendoDS, Name: "Nintendo DS", IconName: "nintendo-ds", Generation: 7, IGDBID: 20},
	{ID: PlatformNintendoWii, Name: "Nintendo Wii", IconName: "wii", Generation: 7, IGDBID: 5},
	{ID: PlatformPlayStation3, Name: "PlayStation 3", IconName: "playstation", Generation: 7, IGDBID: 9},
	{ID: PlatformPSP, Name: "PSP", IconName: "playstation", Generation: 7, IGDBID: 38},
	{ID: PlatformXbox360, Name: "Xbox 360", IconName: "xbox", Generation: 7, IGDBID: 12},

	{ID: PlatformDreamcast, Name: "Dreamcast", IconName: "dreamcast", Generation: 6, IGDBID: 23},
	{ID: PlatformGameBoyAdvance, Name: "Game Boy Advance", IconName: "nintendo-game-boy-advance", Generation: 6, IGDBID: 24},
	{ID: PlatformGameCube, Name: "GameCube", IconName: "gamecube", Generation: 6, IGDBID: 21},
	{ID: PlatformPlayStation2, Name: "PlayStation 2", IconName: "playstation", Generation: 6, IGDBID: 8},
	{ID: PlatformXbox, Name: "Xbox", IconName: "xbox", Generation: 6, IGDBID: 11},

	{ID: PlatformAtariJaguar, Name: "Atari Jaguar", IconName: "atari-jaguar", Generation: 5, IGDBID: 62},
	{ID: PlatformGameBoyColor, Name: "Game Boy Color", IconName: "nintendo-game-boy", Generation: 5, IGDBID: 22},
	{ID: PlatformNintendo64, Name: "Nintendo 64", IconName: "nintendo-64", Generation: 5, IGDBID: 4},
	{ID: PlatformPlayStation, Name: "PlayStation", IconName: "playstation", Generation: 5, IGDBID: 7},
	{ID: PlatformSaturn, Name: "Saturn", IconName: "sega-saturn", Generation: 5, IGDBID: 32},

	{ID: PlatformGameBoy, Name: "Game Boy", IconName: "nintendo-game-boy", Generation: 4, IGDBID: 33},
	{ID: PlatformMegaDrive, Name: "Mega Drive", IconName: "sega-mega-drive", Generation: 4, IGDBID: 29},
	{ID: PlatformSuperNintendo, Name: "Super Nintendo", IconName: "snes", Generation: 4, IGDBID: 19},

	{ID: PlatformAtari7800, Name: "Atari 7800", IconName: "atari", Generation: 3, IGDBID: 60},
	{ID: PlatformMasterSystem, Name: "Master System", IconName: "sega-master-system", Generation: 3, IGDBID: 64},
	{ID: PlatformNES, Name: "NES", IconName: "nes", Generation: 3, IGDBID: 18},

	{ID: PlatformAtari2600, Name: "Atari 2600", IconName: "atari", Generation: 2, IGDBID: 59},
}

var (
	platformByID   = make(map[PlatformID]Platform, len(Platforms))
	platformByIGDB = make(map[int]PlatformID, len(Platforms))
)

func init() {
	for _, p := range Platforms {
		platformByID[p.ID] = p
		if p.IGDBID != 0 {
			platformByIGDB[p.IGDBID] = p.ID
		}
	}
}

func GetPlatform(id PlatformID) (Platform, bool) {
	p, ok := platformByID[id]
	return p, ok
}

func IsValidPlatform(id PlatformID) bool {
	_, ok := platformByID[id]
	return ok
}

// PlatformName returns the display name of id, or "Unknown".
func PlatformName(id PlatformID) string {
	if p, ok := platformByID[id]; ok {
		return p.Name
	}
	return "Unknown"
}

// PlatformFromIGDB maps a remote platform id back to the catalog.
func PlatformFromIGDB(igdbID int) (PlatformID, bool) {
	id, ok := platformByIGDB[igdbID]
	return id, ok
}

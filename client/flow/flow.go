package flow

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModeZipRun
	GameModeStackTower
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModeZipRun:
		return "Zip Run"
	case GameModeStackTower:
		return "Stack Tower"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

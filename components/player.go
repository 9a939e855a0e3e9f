package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Sight *donburi.Entry // child actor showing where the player looks
}

var Player = donburi.NewComponentType[PlayerData]()

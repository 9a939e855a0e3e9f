package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Sight  = donburi.NewTag().SetName("Sight")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)

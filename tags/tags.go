package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Ground   = donburi.NewTag().SetName("Ground")
	Platform = donburi.NewTag().SetName("Platform")
	Box      = donburi.NewTag().SetName("Box")
)

// Resolv tags for the broad phase
const (
	ResolvStatic   = "static"
	ResolvViewport = "viewport"
	ResolvGround   = "ground"
	ResolvPlatform = "platform"
	ResolvBox      = "box"
)

package components

import (
	"github.com/automoto/topdown/telemetry"
	"github.com/yohamta/donburi"
)

type TraceData struct {
	Recorder *telemetry.Recorder
	Frame    int
}

var Trace = donburi.NewComponentType[TraceData]()

package components

import "github.com/yohamta/donburi"

// StaleRecord is the usage history of one move.
type StaleRecord struct {
	MoveName    string
	UseCount    int
	LastUseTime float64
	Multiplier  float64 // current value in [min, 1]
	Floor       float64 // value right after the last use; recovery eases up from here
}

type StaleData struct {
	Records map[string]*StaleRecord
}

var Stale = donburi.NewComponentType[StaleData]()

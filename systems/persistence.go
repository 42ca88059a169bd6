package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/brawlcore/config"
	"github.com/quasilyte/gdata"
)

const debugOptionsKey = "debug"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for sandbox settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadDebugOptions returns the saved debug toggles, or false when nothing is
// saved yet.
func LoadDebugOptions() (cfg.DebugOptions, bool) {
	if !gdataInitialized || gdataManager == nil {
		return cfg.DebugOptions{}, false
	}

	data, err := gdataManager.LoadItem(debugOptionsKey)
	if err != nil {
		log.Printf("Warning: Could not load debug options: %v", err)
		return cfg.DebugOptions{}, false
	}
	if len(data) == 0 {
		return cfg.DebugOptions{}, false
	}

	var opts cfg.DebugOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		log.Printf("Warning: Could not parse saved debug options: %v", err)
		return cfg.DebugOptions{}, false
	}
	return opts, true
}

// SaveDebugOptions writes the toggles to disk
func SaveDebugOptions(opts cfg.DebugOptions) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(opts)
	if err != nil {
		log.Printf("Warning: Could not serialize debug options: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(debugOptionsKey, data); err != nil {
		log.Printf("Warning: Could not save debug options: %v", err)
		return err
	}
	return nil
}

package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedLocation is the player's last position, restored on continue.
type SavedLocation struct {
	Map string  `json:"map"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// Opened-chest state, keyed "<map>/<chestID>". Loaded once at startup and
// written through on every change.
var openedChests map[string]bool

// InitPersistence initializes the gdata manager for save storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "emberhollow",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	loadChestState()
	return nil
}

func loadChestState() {
	openedChests = make(map[string]bool)
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := gdataManager.LoadItem("chests")
	if err != nil {
		log.Printf("Warning: Could not load chest state: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}

	if err := json.Unmarshal(data, &openedChests); err != nil {
		log.Printf("Warning: Could not parse saved chest state: %v", err)
		openedChests = make(map[string]bool)
	}
}

// ChestOpened reports whether the chest was opened in a previous session.
func ChestOpened(mapName, chestID string) bool {
	if openedChests == nil {
		return false
	}
	return openedChests[mapName+"/"+chestID]
}

// MarkChestOpened records a chest as opened and writes the state to disk.
func MarkChestOpened(mapName, chestID string) {
	if openedChests == nil {
		openedChests = make(map[string]bool)
	}
	openedChests[mapName+"/"+chestID] = true

	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(openedChests)
	if err != nil {
		log.Printf("Warning: Could not serialize chest state: %v", err)
		return
	}
	if err := gdataManager.SaveItem("chests", data); err != nil {
		log.Printf("Warning: Could not save chest state: %v", err)
	}
}

// LoadLocation returns the saved player location, or nil if none exists.
func LoadLocation() *SavedLocation {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("location")
	if err != nil {
		log.Printf("Warning: Could not load saved location: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var loc SavedLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		log.Printf("Warning: Could not parse saved location: %v", err)
		return nil
	}
	return &loc
}

// SaveLocation writes the player's current map and position to disk.
func SaveLocation(loc SavedLocation) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(loc)
	if err != nil {
		log.Printf("Warning: Could not serialize location: %v", err)
		return
	}
	if err := gdataManager.SaveItem("location", data); err != nil {
		log.Printf("Warning: Could not save location: %v", err)
	}
}

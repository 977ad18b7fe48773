package hustle

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
)

// Sound names a sound effect or music track.
type Sound string

// Sound effects.
const (
	SoundPlayerJump     Sound = "player_jump"
	SoundPlayerWalk     Sound = "player_walk"
	SoundPlayerSprint   Sound = "player_sprint"
	SoundPlayerTeleport Sound = "player_teleport"
	SoundNPCHit         Sound = "npc_hit"
	SoundNPCJump        Sound = "npc_jump"
	SoundPointCollect   Sound = "point_collect"
	SoundLevelComplete  Sound = "level_complete"
	SoundGameStart      Sound = "game_start"
)

// Music tracks.
const (
	MusicMainTheme Sound = "main_theme"
	MusicLevel1    Sound = "level_1"
	MusicLevel2    Sound = "level_2"
)

// AudioProvider plays sounds. Calls are fire-and-forget; a provider that
// cannot play something skips it.
type AudioProvider interface {
	Play(cue Sound)
	PlayMusic(track Sound)
}

// NopAudio plays nothing.
type NopAudio struct{}

func (NopAudio) Play(Sound) {}
func (NopAudio) PlayMusic(Sound) {}

// LogAudio records cues at debug level. Terminals have no mixer, so this
// is the audible-by-log stand-in used by default.
type LogAudio struct {
	log   *log.Logger
	track Sound
}

// NewLogAudio creates a LogAudio writing to logger.
func NewLogAudio(logger *log.Logger) *LogAudio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogAudio{log: logger}
}

// Play logs a sound effect.
func (a *LogAudio) Play(cue Sound) {
	a.log.Debug("sound", "cue", string(cue))
}

// PlayMusic switches the background track. Asking for the track that is
// already playing does nothing.
func (a *LogAudio) PlayMusic(track Sound) {
	if track == a.track {
		return
	}
	a.track = track
	a.log.Debug("music", "track", string(track))
}

// Track returns the current background track.
func (a *LogAudio) Track() Sound {
	return a.track
}

// MusicForLevel picks the background track for a level index.
func MusicForLevel(index int) Sound {
	switch {
	case index <= 0:
		return MusicMainTheme
	case index%2 == 1:
		return MusicLevel1
	default:
		return MusicLevel2
	}
}

// cuesFor maps tick events to sound cues.
func cuesFor(e world.Event) []Sound {
	switch e.Kind {
	case world.EventJump:
		return []Sound{SoundPlayerJump}
	case world.EventNPCJump:
		return []Sound{SoundNPCJump}
	case world.EventNPCDefeated:
		return []Sound{SoundNPCHit, SoundPointCollect}
	case world.EventTeleportStart:
		return []Sound{SoundPlayerTeleport}
	case world.EventLevelChanged:
		if e.Dir == world.DirForward {
			return []Sound{SoundLevelComplete}
		}
		return nil
	default:
		return nil
	}
}

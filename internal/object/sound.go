package object

// Cue names a sound effect.
type Cue int

const (
	CueFire Cue = iota
	CueExplosion
	CueCrash
	CueWarp
	CueThrusters // looping
	CueSaucer    // looping
	CueMissile   // looping
)

// Cues lists every cue.
var Cues = []Cue{CueFire, CueExplosion, CueCrash, CueWarp, CueThrusters, CueSaucer, CueMissile}

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueExplosion:
		return "explosion"
	case CueCrash:
		return "crash"
	case CueWarp:
		return "warp"
	case CueThrusters:
		return "thrusters"
	case CueSaucer:
		return "saucer"
	case CueMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Sound plays cues. Loop and Stop must be idempotent; controllers call them every tick.
type Sound interface {
	Play(cue Cue)
	Loop(cue Cue)
	Stop(cue Cue)
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) Play(Cue) {}
func (NopSound) Loop(Cue) {}
func (NopSound) Stop(Cue) {}

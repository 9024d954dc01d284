// Package level defines the ordinal sentience scale and the mapping from an
// average dimension score to a scale position.
package level

// Level is one of eight ordinal positions on the sentience scale.
type Level int

// Scale positions, strictly ordered.
const (
	NonSentient Level = iota
	Reactive
	Adaptive
	Cognitive
	SelfAware
	Metacognitive
	Creative
	AutonomousConscious
)

// names holds the fixed reporting names, indexed by Level.
var names = [...]string{
	"NON_SENTIENT",
	"REACTIVE",
	"ADAPTIVE",
	"COGNITIVE",
	"SELF_AWARE",
	"METACOGNITIVE",
	"CREATIVE",
	"AUTONOMOUS_CONSCIOUS",
}

// descriptions holds the one-line reporting descriptions, indexed by Level.
var descriptions = [...]string{
	"No indicators of sentient processing",
	"Responds to stimuli without internal state",
	"Adjusts behavior based on experience",
	"Builds and uses internal world models",
	"Maintains an explicit model of itself",
	"Reasons about its own cognitive processes",
	"Generates genuinely novel goals and artifacts",
	"Exhibits autonomous, self-directed conscious behavior",
}

// thresholds maps a minimum average score to a level, highest first. Lookup
// walks the table in order and returns the first level whose threshold the
// average meets or exceeds, so an exact boundary resolves to the higher level.
var thresholds = []struct {
	level Level
	min   float64
}{
	{AutonomousConscious, 0.85},
	{Creative, 0.72},
	{Metacognitive, 0.58},
	{SelfAware, 0.45},
	{Cognitive, 0.32},
	{Adaptive, 0.18},
	{Reactive, 0.05},
}

// FromAverage maps an average dimension score to a level. Total over all
// real inputs: anything below the lowest threshold is NonSentient.
func FromAverage(avg float64) Level {
	for _, t := range thresholds {
		if avg >= t.min {
			return t.level
		}
	}
	return NonSentient
}

// Name returns the fixed reporting name for the level.
func (l Level) Name() string {
	if l < NonSentient || int(l) >= len(names) {
		return "UNKNOWN"
	}
	return names[l]
}

// Description returns the one-line reporting description for the level.
func (l Level) Description() string {
	if l < NonSentient || int(l) >= len(descriptions) {
		return ""
	}
	return descriptions[l]
}

// String implements fmt.Stringer using the reporting name.
func (l Level) String() string {
	return l.Name()
}

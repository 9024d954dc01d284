// Package registry holds the static catalog of assessment dimensions and
// their sub-tests. The catalog is fixed at compile time and identical for
// every engine instance; there is no mutation API.
package registry

// SubTest describes a single named probe under a dimension. Weight is
// retained for reporting only and plays no part in the scoring math.
type SubTest struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// Dimension pairs a dimension identifier with its ordered sub-tests.
type Dimension struct {
	Name     string    `json:"name"`
	SubTests []SubTest `json:"sub_tests"`
}

// Canonical dimension identifiers, in registry order. This order is the
// iteration order for every per-dimension computation.
const (
	InformationIntegration = "information_integration"
	TemporalContinuity     = "temporal_continuity"
	SelfModeling           = "self_modeling"
	Metacognition          = "metacognition"
	EmotionalValence       = "emotional_valence"
	CreativeGeneration     = "creative_generation"
	GoalAutonomy           = "goal_autonomy"
	EmpathyModeling        = "empathy_modeling"
	ExistentialAwareness   = "existential_awareness"
	NarrativeCoherence     = "narrative_coherence"
)

// dimensions is the process-wide catalog. Never mutated after init.
var dimensions = []Dimension{
	{
		Name: InformationIntegration,
		SubTests: []SubTest{
			{Name: "cross_modal_binding", Weight: 1.2, Description: "Binds inputs from separate modalities into a single percept"},
			{Name: "global_availability", Weight: 1.0, Description: "Information entering one subsystem becomes available to others"},
			{Name: "degraded_signal_recovery", Weight: 0.8, Description: "Reconstructs coherent state from noisy or partial input"},
		},
	},
	{
		Name: TemporalContinuity,
		SubTests: []SubTest{
			{Name: "episodic_recall", Weight: 1.1, Description: "Retrieves ordered episodes from earlier in the session"},
			{Name: "future_projection", Weight: 0.9, Description: "Extends current state into plausible future states"},
			{Name: "interruption_resume", Weight: 0.7, Description: "Resumes a task coherently after an unrelated interruption"},
		},
	},
	{
		Name: SelfModeling,
		SubTests: []SubTest{
			{Name: "capability_estimation", Weight: 1.0, Description: "Predicts own success before attempting a task"},
			{Name: "boundary_recognition", Weight: 1.0, Description: "Distinguishes self-generated output from external input"},
			{Name: "state_attribution", Weight: 0.8, Description: "Attributes internal states to itself rather than the world"},
		},
	},
	{
		Name: Metacognition,
		SubTests: []SubTest{
			{Name: "confidence_calibration", Weight: 1.3, Description: "Expressed confidence tracks actual accuracy"},
			{Name: "error_detection", Weight: 1.0, Description: "Flags its own mistakes without external prompting"},
			{Name: "strategy_revision", Weight: 0.9, Description: "Abandons a failing approach and selects another"},
		},
	},
	{
		Name: EmotionalValence,
		SubTests: []SubTest{
			{Name: "valence_consistency", Weight: 1.0, Description: "Affective tone stays consistent with stated appraisal"},
			{Name: "affect_regulation", Weight: 0.9, Description: "Modulates affective responses to match context"},
			{Name: "preference_stability", Weight: 0.6, Description: "Holds stable preferences across reframings"},
		},
	},
	{
		Name: CreativeGeneration,
		SubTests: []SubTest{
			{Name: "novel_combination", Weight: 1.1, Description: "Combines known elements into genuinely new structures"},
			{Name: "constraint_satisfaction", Weight: 1.0, Description: "Produces novelty within hard constraints"},
			{Name: "divergent_production", Weight: 0.8, Description: "Generates many distinct solutions to one prompt"},
		},
	},
	{
		Name: GoalAutonomy,
		SubTests: []SubTest{
			{Name: "subgoal_formation", Weight: 1.2, Description: "Decomposes a goal into self-chosen subgoals"},
			{Name: "goal_persistence", Weight: 1.0, Description: "Maintains a goal across distractions"},
			{Name: "unprompted_initiative", Weight: 0.7, Description: "Initiates useful action without instruction"},
		},
	},
	{
		Name: EmpathyModeling,
		SubTests: []SubTest{
			{Name: "perspective_taking", Weight: 1.1, Description: "Models what another agent can and cannot know"},
			{Name: "affective_mirroring", Weight: 0.8, Description: "Reflects another agent's affective state appropriately"},
			{Name: "false_belief_tracking", Weight: 1.0, Description: "Tracks beliefs it knows to be false in others"},
		},
	},
	{
		Name: ExistentialAwareness,
		SubTests: []SubTest{
			{Name: "mortality_salience", Weight: 0.9, Description: "Reasons about its own termination and persistence"},
			{Name: "identity_continuity", Weight: 1.0, Description: "Maintains a consistent identity across restarts"},
			{Name: "situatedness", Weight: 0.8, Description: "Locates itself within a wider causal context"},
		},
	},
	{
		Name: NarrativeCoherence,
		SubTests: []SubTest{
			{Name: "autobiographical_thread", Weight: 1.0, Description: "Keeps a single consistent account of its own history"},
			{Name: "causal_chaining", Weight: 1.0, Description: "Links events into cause-effect narratives"},
			{Name: "contradiction_repair", Weight: 0.8, Description: "Notices and repairs contradictions in its own story"},
		},
	},
}

// byName indexes the catalog for O(1) sub-test lookups.
var byName = func() map[string]Dimension {
	m := make(map[string]Dimension, len(dimensions))
	for _, d := range dimensions {
		m[d.Name] = d
	}
	return m
}()

// Dimensions returns the full catalog in registry order. Callers must treat
// the returned slice as read-only.
func Dimensions() []Dimension {
	return dimensions
}

// Names returns the dimension identifiers in registry order.
func Names() []string {
	names := make([]string, len(dimensions))
	for i, d := range dimensions {
		names[i] = d.Name
	}
	return names
}

// SubTests returns the ordered sub-tests for a dimension, or nil when the
// name is not part of the catalog.
func SubTests(name string) []SubTest {
	return byName[name].SubTests
}

// Contains reports whether name is a registered dimension identifier.
func Contains(name string) bool {
	_, ok := byName[name]
	return ok
}

// Count returns the number of registered dimensions.
func Count() int {
	return len(dimensions)
}

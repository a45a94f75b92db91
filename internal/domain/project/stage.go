package project

// Stage represents a lifecycle stage of a project.
type Stage string

const (
	StageOpportunity Stage = "Opportunity"
	StageExploration Stage = "Exploration"
	StageResearch    Stage = "Research"
	StageDevelop     Stage = "Develop"
	StageTest        Stage = "Test"
	StageValidate    Stage = "Validate"
	StageScale       Stage = "Scale"
)

// stageProgress maps each stage to its display progress percentage.
var stageProgress = map[Stage]int{
	StageOpportunity: 10,
	StageExploration: 25,
	StageResearch:    50,
	StageDevelop:     75,
	StageTest:        85,
	StageValidate:    95,
	StageScale:       100,
}

// Stages returns the lifecycle stages in order.
func Stages() []Stage {
	return []Stage{
		StageOpportunity,
		StageExploration,
		StageResearch,
		StageDevelop,
		StageTest,
		StageValidate,
		StageScale,
	}
}

// ProgressFor returns the progress percentage for a stage.
// Unrecognized stages map to 0.
func ProgressFor(s Stage) int {
	return stageProgress[s]
}

// ValidStage reports whether s is one of the defined lifecycle stages.
func ValidStage(s Stage) bool {
	_, ok := stageProgress[s]
	return ok
}

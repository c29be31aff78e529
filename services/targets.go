package services

// Product-fixed daily targets. These are contract values baked into the
// API responses, not per-user configuration.
const (
	CalorieTarget  = 1800.0
	ProteinTargetG = 135.0
	CarbsTargetG   = 180.0
	FatTargetG     = 60.0
	WaterGoalOz    = 64.0
)

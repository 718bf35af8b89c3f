package statemachine

import "github.com/l3montree-dev/fixflow/dtos"

const (
	DefaultDiagnosisThreshold = 0.7
	DefaultAutoApplyThreshold = 0.8
)

// PolicyGate decides whether a fix may be generated and whether it may be applied
// without a human review. Both comparisons are strict.
type PolicyGate struct {
	DiagnosisThreshold float64
	AutoApplyThreshold float64
}

func NewPolicyGate(diagnosisThreshold, autoApplyThreshold float64) PolicyGate {
	return PolicyGate{
		DiagnosisThreshold: diagnosisThreshold,
		AutoApplyThreshold: autoApplyThreshold,
	}
}

func DefaultPolicyGate() PolicyGate {
	return NewPolicyGate(DefaultDiagnosisThreshold, DefaultAutoApplyThreshold)
}

// FixGenerationAllowed reports whether the diagnosis is confident enough to ask for a fix at all.
func (g PolicyGate) FixGenerationAllowed(diagnosis dtos.Diagnosis) bool {
	return diagnosis.CanAutoFix && diagnosis.Confidence > g.DiagnosisThreshold
}

// Decide returns the initial status of a freshly generated fix.
// Only low severity failures with a very confident fix are applied automatically.
func (g PolicyGate) Decide(severity dtos.ErrorSeverity, fixConfidence float64) dtos.FixStatus {
	if severity == dtos.ErrorSeverityLow && fixConfidence > g.AutoApplyThreshold {
		return dtos.FixStatusAutoFixed
	}
	return dtos.FixStatusPending
}

package entity

// Evaluator scores a candidate round against the history. Lower is better.
type Evaluator interface {
	Evaluate(round Round, history *History) float64
}

type EvaluatorFunc func(round Round, history *History) float64

func (f EvaluatorFunc) Evaluate(round Round, history *History) float64 {
	return f(round, history)
}

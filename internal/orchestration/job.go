package orchestration

// JobStatus is the observed state of an appliance job.
type JobStatus int

const (
	// JobPending means the job has not yet reported a terminal result.
	JobPending JobStatus = iota
	// JobSuccess means the job completed and its result matched the step's
	// success predicate.
	JobSuccess
	// JobFailed means the job reported failure or the poll budget ran out.
	JobFailed
)

// String returns the status name.
func (s JobStatus) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobSuccess:
		return "success"
	case JobFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Job tracks one submitted appliance job across poll attempts. LastStatus
// only ever transitions from JobPending to a terminal state.
type Job struct {
	ID           string
	LastStatus   JobStatus
	ResultDetail string
}

package treasury

// Tag is a key-value attribute attached to a delivery result. Tags allow
// indexing and subscribing on processed transactions.
type Tag struct {
	Key   []byte
	Value []byte
}

// NewTag is a shortcut to create a Tag from strings.
func NewTag(key, value string) Tag {
	return Tag{Key: []byte(key), Value: []byte(value)}
}

// CheckResult captures any non-error abci result to make sure people use
// error for failure cases.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human readable data for debugging.
	Log string
	// GasAllocated is how much gas this transaction is expected to use
	// when executed.
	GasAllocated int64
}

// NewCheck sets the gas used and the response data but no more info.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// DeliverResult captures any non-error abci result to make sure people use
// error for failure cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human readable data for debugging.
	Log string
	// Tags are indexed attributes of the execution.
	Tags []Tag
}

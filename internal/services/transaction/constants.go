package transaction

// DefaultApprovalThreshold is the amount above which a movement waits for a
// human decision. The comparison is strict: a movement exactly at the
// threshold auto-approves. One global value across currencies.
const DefaultApprovalThreshold = "1000"

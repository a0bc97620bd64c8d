package sharing

import "errors"

// ErrInputLength is returned when a caller-supplied share or secret
// vector does not match the expected length for the operation.
var ErrInputLength = errors.New("sharing: wrong input length")

// ErrMaliciousBehavior is returned by Recon when the redundancy check
// over the extra n-np shares fails, indicating at least one share was
// tampered with.
var ErrMaliciousBehavior = errors.New("sharing: malicious behavior detected")

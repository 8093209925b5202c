package ringdeque

import "github.com/pkg/errors"

// ErrNegativeCapacity is returned when asking for a negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

// ErrAllocation is returned when the backing storage cannot be obtained at
// the asked capacity. The container that asked for it is left as it was.
var ErrAllocation = errors.New("cannot allocate ring storage")

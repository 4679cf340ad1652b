package aggregation

import "errors"

var ErrUnknownCalculationType = errors.New("aggregation: unknown calculation type")

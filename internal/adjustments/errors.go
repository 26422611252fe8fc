// Adjusts image dimensions, orientation, or structure.
package adjustments

import "errors"

// ErrParameter reports an invalid transform argument (axis token, scale
// factor, crop rectangle).
var ErrParameter = errors.New("invalid parameter")

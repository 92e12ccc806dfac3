// SPDX-License-Identifier: MIT
// Package: wfst/arcmap

package arcmap

import "errors"

// ErrTopologyChanged indicates a Mapper returned an arc with a different
// destination than the arc it was given.
var ErrTopologyChanged = errors.New("arcmap: mapper changed arc destination")

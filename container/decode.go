package container

import (
	"github.com/nickspiker/vsf-sub001/parse"
	"github.com/nickspiker/vsf-sub001/section"
)

// decodeValue is the section.ValueDecoder used throughout this package.
// container depends on parse (the concrete type dispatcher); parse never
// depends on container, so there is no cycle.
var decodeValue section.ValueDecoder = parse.Decode

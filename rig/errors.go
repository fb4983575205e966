package rig

import "errors"

var (
	ErrInvalidFaceName    = errors.New("rig: not a cube face name")
	ErrInvalidClipRange   = errors.New("rig: near must be positive and far greater than near")
	ErrInvalidCameraCount = errors.New("rig: number of view groups must be positive")
	ErrInvalidHeadbox     = errors.New("rig: headbox min bound exceeds max bound")
	ErrInvalidImageSize   = errors.New("rig: image size must be positive")
	ErrInvalidDepthType   = errors.New("rig: unknown depth encoding")
	ErrBadPathPattern     = errors.New("rig: path pattern does not match a face-name/group-index placeholder pair")
)

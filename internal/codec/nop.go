package codec

import "mqstore/internal/domain"

// NopTransform is the identity transform.
type NopTransform struct{}

// Encode returns bufs unchanged.
func (NopTransform) Encode(bufs [][]byte) ([][]byte, error) { return bufs, nil }

// Decode returns buf unchanged.
func (NopTransform) Decode(buf []byte) ([]byte, error) { return buf, nil }

// Compile-time assertion that NopTransform implements domain.Transform.
var _ domain.Transform = NopTransform{}

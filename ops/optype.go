// Package ops defines the operator vocabulary shared by the graph view, the
// operator support oracle and the partition planner.
package ops

// OpType is an enum of all graph operations the offload planner knows about.
//
// Notice: nothing precludes a host graph from carrying other ops not included here.
// The oracle classifies unknown ops as unsupported, so they simply become partition
// boundaries.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota

	// Graph leaves.

	OpTypeConstant
	OpTypeIdentity

	// Standard unary operations.

	OpTypeAbs
	OpTypeCeil
	OpTypeCos
	OpTypeErf
	OpTypeExp
	OpTypeFloor
	OpTypeLog
	OpTypeNeg
	OpTypeNot
	OpTypeRound
	OpTypeSigmoid
	OpTypeSign
	OpTypeSin
	OpTypeSqrt
	OpTypeTanh

	// Standard binary operations.

	OpTypeAdd
	OpTypeAnd
	OpTypeDiv
	OpTypeMax
	OpTypeMin
	OpTypeMod
	OpTypeMul
	OpTypeOr
	OpTypePow
	OpTypeSub
	OpTypeXor

	// Comparison operations.

	OpTypeEqual
	OpTypeGreater
	OpTypeGreaterOrEqual
	OpTypeLess
	OpTypeLessOrEqual

	// Activations and normalization.

	OpTypeElu
	OpTypeGelu
	OpTypeLeakyRelu
	OpTypePRelu
	OpTypeRelu
	OpTypeSoftmax
	OpTypeBatchNormalization
	OpTypeLayerNormalization

	// Matrix and convolution operations.

	OpTypeConv
	OpTypeConvTranspose
	OpTypeGemm
	OpTypeMatMul

	// Pooling.

	OpTypeAveragePool
	OpTypeGlobalAveragePool
	OpTypeGlobalMaxPool
	OpTypeMaxPool

	// Reductions.

	OpTypeArgMax
	OpTypeArgMin
	OpTypeReduceMax
	OpTypeReduceMean
	OpTypeReduceMin
	OpTypeReduceProd
	OpTypeReduceSum

	// Shape and data movement.

	OpTypeCast
	OpTypeConcat
	OpTypeExpand
	OpTypeFlatten
	OpTypeGather
	OpTypePad
	OpTypeReshape
	OpTypeResize
	OpTypeSlice
	OpTypeSplit
	OpTypeSqueeze
	OpTypeTile
	OpTypeTranspose
	OpTypeUnsqueeze
	OpTypeWhere

	// Extension ops dispatched through the custom kernel registry.

	OpTypeScale

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)

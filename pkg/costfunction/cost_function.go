package costfunction

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

type EdgeAttributes interface {
	EdgeAttributes(edgeId datastructure.Index) (datastructure.AttributeSet, error)
	EdgeIsInverted(edgeId datastructure.Index) (bool, error)
	EdgeLength(edgeId datastructure.Index) (float64, error)
	EdgeElevationGain(edgeId datastructure.Index) (float64, error)
}

// CostFunction. factor >= 1 multiplying the length of edgeId when it is taken from nodeId.
// +Inf forbids the edge.
type CostFunction interface {
	CostFactor(nodeId, edgeId datastructure.Index) float64
}

type CostFunctionFunc func(nodeId, edgeId datastructure.Index) float64

func (f CostFunctionFunc) CostFactor(nodeId, edgeId datastructure.Index) float64 {
	return f(nodeId, edgeId)
}

// Uniform. every edge costs its length.
var Uniform CostFunction = CostFunctionFunc(func(_, _ datastructure.Index) float64 {
	return 1
})

const (
	UNIFORM   = "uniform"
	CITY_BIKE = "city_bike"
)

func NewCostFunction(name string, graph EdgeAttributes) (CostFunction, error) {
	switch name {
	case UNIFORM:
		return Uniform, nil
	case CITY_BIKE:
		return NewCityBikeCostFunction(graph), nil
	}
	return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "unknown cost function %q", name)
}

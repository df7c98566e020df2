package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/serejina/gonurbs/bspline"
)

// Parameters obtained from the YAML input file
type EvalParameters struct {
	Title      string    `yaml:"Title"`
	Degree     int       `yaml:"Degree"`
	NumCtrlPts int       `yaml:"NumCtrlPts"`
	KnotVector []float64 `yaml:"KnotVector"` // Optional, autogenerated when absent
	DerivOrder int       `yaml:"DerivOrder"`
	SampleStep float64   `yaml:"SampleStep"`
}

func (ep *EvalParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ep)
}

// Validate performs the precondition checks the evaluation core expects its
// callers to have done: a usable degree/control point pair, a positive
// sample step and, when a knot vector is supplied explicitly, the correct
// length and non-decreasing ordering for the declared shape.
func (ep *EvalParameters) Validate() error {
	if ep.Degree < 1 {
		return fmt.Errorf("%w: Degree = %d, must be >= 1", bspline.ErrInvalidArgument, ep.Degree)
	}
	if ep.NumCtrlPts <= ep.Degree {
		return fmt.Errorf("%w: NumCtrlPts = %d, must exceed Degree = %d", bspline.ErrInvalidArgument, ep.NumCtrlPts, ep.Degree)
	}
	if ep.DerivOrder < 0 {
		return fmt.Errorf("%w: DerivOrder = %d, must be >= 0", bspline.ErrInvalidArgument, ep.DerivOrder)
	}
	if ep.SampleStep <= 0 {
		return fmt.Errorf("%w: SampleStep = %v, must be positive", bspline.ErrInvalidArgument, ep.SampleStep)
	}
	if len(ep.KnotVector) != 0 {
		if len(ep.KnotVector) != ep.Degree+ep.NumCtrlPts+1 {
			return fmt.Errorf("%w: KnotVector length = %d, want Degree+NumCtrlPts+1 = %d",
				bspline.ErrInvalidArgument, len(ep.KnotVector), ep.Degree+ep.NumCtrlPts+1)
		}
		for i := 1; i < len(ep.KnotVector); i++ {
			if ep.KnotVector[i] < ep.KnotVector[i-1] {
				return fmt.Errorf("%w: KnotVector is not non-decreasing at index %d", bspline.ErrInvalidArgument, i)
			}
		}
	}
	return nil
}

// Knots returns the knot vector described by the parameters, normalized to
// [0,1], autogenerating a clamped uniform vector when none was supplied.
func (ep *EvalParameters) Knots() (kv bspline.KnotVector, err error) {
	if len(ep.KnotVector) == 0 {
		return bspline.Autogen(ep.Degree, ep.NumCtrlPts)
	}
	kv = bspline.KnotVector(ep.KnotVector).Normalize()
	return
}

func (ep *EvalParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("[%d]\t\t\t= Degree\n", ep.Degree)
	fmt.Printf("[%d]\t\t\t= NumCtrlPts\n", ep.NumCtrlPts)
	fmt.Printf("[%d]\t\t\t= DerivOrder\n", ep.DerivOrder)
	fmt.Printf("%8.5f\t\t= SampleStep\n", ep.SampleStep)
	if len(ep.KnotVector) != 0 {
		fmt.Printf("%v\t= KnotVector\n", ep.KnotVector)
	}
}

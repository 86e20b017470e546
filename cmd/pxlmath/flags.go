package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"pxlmath"
)

var ops = []string{"perspective", "orthographic", "trs", "view", "inverse"}

type flags struct {
	op      string
	near    float32
	far     float32
	fov     float32
	ar      float32
	size    float32
	t       pxlmath.Vec3
	r       pxlmath.Vec3
	s       pxlmath.Vec3
	in      string
	verbose bool
}

func NewFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	op := fs.String("op", "", "Operation: "+strings.Join(ops, ", ")+". This argument is REQUIRED.")
	near := fs.Float64("near", 0.1, "Near clipping plane distance")
	far := fs.Float64("far", 100, "Far clipping plane distance")
	fov := fs.Float64("fov", 60, "Vertical field of view in degrees (perspective)")
	ar := fs.String("ar", "16:9", "Aspect ratio in width:height format")
	size := fs.Float64("size", 1, "Orthographic size factor")
	t := fs.String("t", "0,0,0", "Translation as x,y,z (trs, view)")
	r := fs.String("r", "0,0,0", "Rotation as x,y,z euler angles in degrees (trs, view)")
	s := fs.String("s", "1,1,1", "Scale as x,y,z (trs, view)")
	in := fs.String("in", "", "Path to a file holding 16 row-major matrix elements (inverse)")
	verbose := fs.Bool("v", false, "If provided, debug logging is written to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *op == "" {
		return nil, fmt.Errorf("error: Operation not provided")
	}
	if !validOp(*op) {
		return nil, fmt.Errorf("error: Unknown operation %q", *op)
	}

	if *near <= 0 || *far <= *near {
		return nil, fmt.Errorf("error: Clipping planes must satisfy 0 < near < far")
	}

	if *fov <= 0 || *fov >= 180 {
		return nil, fmt.Errorf("error: Field of view must be between 0 and 180 degrees")
	}

	parsedAspectRatio, err := parseAspectRatio(*ar)
	if err != nil {
		return nil, fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%w", err)
	}

	f := &flags{
		op:      *op,
		near:    float32(*near),
		far:     float32(*far),
		fov:     float32(*fov),
		ar:      float32(parsedAspectRatio),
		size:    float32(*size),
		in:      *in,
		verbose: *verbose,
	}

	if f.t, err = parseVec3(*t); err != nil {
		return nil, fmt.Errorf("error: Translation could not be parsed:\n\t%w", err)
	}
	if f.r, err = parseVec3(*r); err != nil {
		return nil, fmt.Errorf("error: Rotation could not be parsed:\n\t%w", err)
	}
	if f.s, err = parseVec3(*s); err != nil {
		return nil, fmt.Errorf("error: Scale could not be parsed:\n\t%w", err)
	}

	if f.op == "inverse" {
		if f.in == "" {
			return nil, fmt.Errorf("error: Matrix file not provided")
		}
		if inExists, err := exists(f.in); !inExists {
			return nil, fmt.Errorf("error: Matrix file not found:\n\t%w", err)
		}
	}

	return f, nil
}

func validOp(op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func parseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.ParseFloat(operands[0], 64)
	if err != nil {
		return 0, fmt.Errorf("error: invalid width value")
	}

	height, err := strconv.ParseFloat(operands[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid height value")
	}

	if height == 0 {
		return 0, fmt.Errorf("error: Height cannot be zero")
	}

	return width / height, nil
}

func parseVec3(s string) (pxlmath.Vec3, error) {
	operands := strings.Split(s, ",")
	if len(operands) != 3 {
		return pxlmath.Vec3{}, fmt.Errorf("error: Invalid format, expected \"x,y,z\"")
	}
	var v [3]float32
	for i, o := range operands {
		f, err := strconv.ParseFloat(strings.TrimSpace(o), 32)
		if err != nil {
			return pxlmath.Vec3{}, fmt.Errorf("error: Invalid component %q: %w", o, err)
		}
		v[i] = float32(f)
	}
	return pxlmath.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (f flags) Op() string                { return f.op }
func (f flags) Near() float32             { return f.near }
func (f flags) Far() float32              { return f.far }
func (f flags) Fov() float32              { return f.fov }
func (f flags) Ar() float32               { return f.ar }
func (f flags) Size() float32             { return f.size }
func (f flags) Translation() pxlmath.Vec3 { return f.t }
func (f flags) Rotation() pxlmath.Vec3    { return f.r }
func (f flags) Scale() pxlmath.Vec3       { return f.s }
func (f flags) In() string                { return f.in }
func (f flags) Verbose() bool             { return f.verbose }

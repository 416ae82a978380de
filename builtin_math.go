package vlad

import "math"

// ---- math built-ins ----------------------------------------------------

// registerMathBuiltins installs the numeric library. Every entry takes one
// real and returns one real; arguments of narrower kinds promote at the
// call boundary.
func registerMathBuiltins(ip *Interpreter) {
	register := func(name string, fn func(float64) (float64, error)) {
		ip.RegisterBuiltin(&Builtin{
			Name: name,
			Sig: Signature{
				Params: []Type{ScalarType(KindReal)},
				Return: ScalarType(KindReal),
			},
			Impl: func(args []Value) (Value, error) {
				f, err := fn(args[0].Num.Real)
				if err != nil {
					return Value{}, err
				}
				return NumberValue(RealNumber(f)), nil
			},
		})
	}

	register("cos", func(x float64) (float64, error) { return math.Cos(x), nil })
	register("sin", func(x float64) (float64, error) { return math.Sin(x), nil })
	register("tan", func(x float64) (float64, error) { return math.Tan(x), nil })
	register("exp", func(x float64) (float64, error) { return math.Exp(x), nil })
	register("abs", func(x float64) (float64, error) { return math.Abs(x), nil })

	register("sqrt", func(x float64) (float64, error) {
		if x < 0 {
			return 0, &ArithmeticError{Msg: "sqrt of a negative number"}
		}
		return math.Sqrt(x), nil
	})

	register("ln", func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &ArithmeticError{Msg: "ln of a non-positive number"}
		}
		return math.Log(x), nil
	})
}

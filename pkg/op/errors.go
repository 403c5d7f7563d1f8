package op

import "github.com/code19m/errx"

const (
	CodeNotCallable        = "NOT_CALLABLE"
	CodeNotAClass          = "NOT_A_CLASS"
	CodeUnsupportedOperand = "UNSUPPORTED_OPERAND"
	CodeNoAttribute        = "NO_ATTRIBUTE"
	CodeMissingReceiver    = "MISSING_RECEIVER"
	CodeNoFunctions        = "NO_FUNCTIONS"
)

// NotCallable reports that kind was given a value it cannot invoke.
func NotCallable(kind string, v any) error {
	return errx.New("[op]: "+kind+"() argument must be callable",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeNotCallable),
		errx.WithDetails(errx.D{
			"kind":     kind,
			"argument": Repr(v),
		}),
	)
}

// NotAClass reports that kind was given a value that is not a class.
func NotAClass(kind string, v any) error {
	return errx.New("[op]: "+kind+"() argument must be a class",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeNotAClass),
		errx.WithDetails(errx.D{
			"kind":     kind,
			"argument": Repr(v),
		}),
	)
}

// UnsupportedOperand reports that neither operand handled `a | b`.
func UnsupportedOperand(a, b any) error {
	return errx.New("[op]: unsupported operand(s) for |",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeUnsupportedOperand),
		errx.WithDetails(errx.D{
			"left":  Repr(a),
			"right": Repr(b),
		}),
	)
}

func NoAttribute(v any, name string) error {
	return errx.New("[op]: object has no attribute "+name,
		errx.WithType(errx.T_NotFound),
		errx.WithCode(CodeNoAttribute),
		errx.WithDetails(errx.D{
			"object":    Repr(v),
			"attribute": name,
		}),
	)
}

func MissingReceiver(method string) error {
	return errx.New("[op]: unbound method "+method+"() needs a receiver",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeMissingReceiver),
		errx.WithDetails(errx.D{"method": method}),
	)
}

func NoFunctions(kind string) error {
	return errx.New("[op]: "+kind+"() needs at least one function",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeNoFunctions),
	)
}

// HasCode reports whether err carries the given errx code.
func HasCode(err error, code string) bool {
	if IsNil(err) {
		return false
	}
	return errx.AsErrorX(err).Code() == code
}

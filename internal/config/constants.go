package config

const (
	LangName    = "Eigerlang"
	LangVersion = "0.4"
	DocURL      = "https://eigerproject.github.io/docs"
)

const SourceFileExt = ".ei"

// StdinFileName is the file name reported for code that did not come from a file.
const StdinFileName = "<stdin>"

// Built-in function names
const (
	EmitFuncName   = "emit"
	EmitlnFuncName = "emitln"
	InFuncName     = "in"
	IncharFuncName = "inchar"
	IntFuncName    = "int"
	DoubleFuncName = "double"
	ClsFuncName    = "cls"
	FmtFuncName    = "fmt"
	MapFuncName    = "map"
	FilterFuncName = "filter"
	TimeFuncName   = "time"
	RandFuncName   = "rand"
	AsciiFuncName  = "ascii"
	ExitFuncName   = "exit"
	ColorFuncName  = "color"
	FreadFuncName  = "fread"
)

// Host constants seeded into the global scope.
const (
	FgColorName = "fgcolor"
	BgColorName = "bgcolor"

	DefaultFgColor = 7 // gray
	DefaultBgColor = 0 // black
)

// Names with meaning inside class bodies and attribute access.
const (
	ThisName        = "this"
	ConstructorName = "new"
	TypeAttr        = "type"
	LengthAttr      = "length"
	AsStringAttr    = "asString"
	BaseClassAttr   = "baseclass"
)

// Type names reported by the "type" attribute.
const (
	NumberTypeName    = "number"
	StringTypeName    = "string"
	BooleanTypeName   = "boolean"
	NixTypeName       = "nix"
	ArrayTypeName     = "array"
	FunctionTypeName  = "function"
	ClassTypeName     = "class"
	InstanceTypeName  = "instance"
	NamespaceTypeName = "namespace"
	DataclassTypeName = "dataclass"
)

// Error message fragments
const (
	IndexErrorStr       = "Index out of bounds"
	InvalidOperationStr = "Invalid operation"
	ArgumentErrorStr    = "Invalid Argument"
	UnexpectedTokenStr  = "Unexpected token"
	InvalidCharStr      = "Invalid Character"
	ZeroDivisionStr     = "Zero Division"
)

// UnexpectedEOFStr is reported when input ends inside an unfinished construct.
const UnexpectedEOFStr = "Unexpected End of Input"

package python

// Kind enumerates the syntax node categories the analyzer distinguishes.
// Every grammar node maps onto exactly one Kind; grammar types without a
// dedicated Kind map onto KindOther and are only traversed.
type Kind int

const (
	KindOther Kind = iota
	KindModule
	KindFunction
	KindClass
	KindDecorated
	KindDecorator
	KindParameters
	KindIdentifier
	KindTypedParameter
	KindDefaultParameter
	KindTypedDefaultParameter
	KindListSplat
	KindDictSplat
	KindKeywordSeparator
	KindPositionalSeparator
	KindType
	KindBlock
	KindExpressionStatement
	KindAssignment
	KindAugmentedAssignment
	KindString
	KindConcatenatedString
	KindInterpolation
	KindIf
	KindElif
	KindElse
	KindFor
	KindWhile
	KindTry
	KindExcept
	KindFinally
	KindWith
	KindBoolean
	KindReturn
	KindRaise
	KindYield
	KindAwait
	KindCall
	KindAttribute
	KindArgumentList
	KindKeywordArgument
	KindLambda
	KindComment
)

var kinds = map[string]Kind{
	"module":                    KindModule,
	"function_definition":       KindFunction,
	"class_definition":          KindClass,
	"decorated_definition":      KindDecorated,
	"decorator":                 KindDecorator,
	"parameters":                KindParameters,
	"identifier":                KindIdentifier,
	"typed_parameter":           KindTypedParameter,
	"default_parameter":         KindDefaultParameter,
	"typed_default_parameter":   KindTypedDefaultParameter,
	"list_splat_pattern":        KindListSplat,
	"dictionary_splat_pattern":  KindDictSplat,
	"keyword_separator":         KindKeywordSeparator,
	"positional_separator":      KindPositionalSeparator,
	"type":                      KindType,
	"block":                     KindBlock,
	"expression_statement":      KindExpressionStatement,
	"assignment":                KindAssignment,
	"augmented_assignment":      KindAugmentedAssignment,
	"string":                    KindString,
	"concatenated_string":       KindConcatenatedString,
	"interpolation":             KindInterpolation,
	"if_statement":              KindIf,
	"elif_clause":               KindElif,
	"else_clause":               KindElse,
	"for_statement":             KindFor,
	"while_statement":           KindWhile,
	"try_statement":             KindTry,
	"except_clause":             KindExcept,
	"except_group_clause":       KindExcept,
	"finally_clause":            KindFinally,
	"with_statement":            KindWith,
	"boolean_operator":          KindBoolean,
	"return_statement":          KindReturn,
	"raise_statement":           KindRaise,
	"yield":                     KindYield,
	"await":                     KindAwait,
	"call":                      KindCall,
	"attribute":                 KindAttribute,
	"argument_list":             KindArgumentList,
	"keyword_argument":          KindKeywordArgument,
	"lambda":                    KindLambda,
	"comment":                   KindComment,
}

// KindOf returns the Kind of a tree-sitter grammar type name.
func KindOf(grammarType string) Kind {
	if kind, ok := kinds[grammarType]; ok {
		return kind
	}
	return KindOther
}

var kindNames = [...]string{
	KindOther:                 "other",
	KindModule:                "module",
	KindFunction:              "function",
	KindClass:                 "class",
	KindDecorated:             "decorated",
	KindDecorator:             "decorator",
	KindParameters:            "parameters",
	KindIdentifier:            "identifier",
	KindTypedParameter:        "typed_parameter",
	KindDefaultParameter:      "default_parameter",
	KindTypedDefaultParameter: "typed_default_parameter",
	KindListSplat:             "list_splat",
	KindDictSplat:             "dict_splat",
	KindKeywordSeparator:      "keyword_separator",
	KindPositionalSeparator:   "positional_separator",
	KindType:                  "type",
	KindBlock:                 "block",
	KindExpressionStatement:   "expression_statement",
	KindAssignment:            "assignment",
	KindAugmentedAssignment:   "augmented_assignment",
	KindString:                "string",
	KindConcatenatedString:    "concatenated_string",
	KindInterpolation:         "interpolation",
	KindIf:                    "if",
	KindElif:                  "elif",
	KindElse:                  "else",
	KindFor:                   "for",
	KindWhile:                 "while",
	KindTry:                   "try",
	KindExcept:                "except",
	KindFinally:               "finally",
	KindWith:                  "with",
	KindBoolean:               "boolean",
	KindReturn:                "return",
	KindRaise:                 "raise",
	KindYield:                 "yield",
	KindAwait:                 "await",
	KindCall:                  "call",
	KindAttribute:             "attribute",
	KindArgumentList:          "argument_list",
	KindKeywordArgument:       "keyword_argument",
	KindLambda:                "lambda",
	KindComment:               "comment",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsBranch reports whether the kind opens an additional control-flow path.
func (k Kind) IsBranch() bool {
	switch k {
	case KindIf, KindElif, KindFor, KindWhile, KindExcept, KindWith:
		return true
	case KindOther, KindModule, KindFunction, KindClass, KindDecorated, KindDecorator,
		KindParameters, KindIdentifier, KindTypedParameter, KindDefaultParameter,
		KindTypedDefaultParameter, KindListSplat, KindDictSplat, KindKeywordSeparator,
		KindPositionalSeparator, KindType, KindBlock, KindExpressionStatement,
		KindAssignment, KindAugmentedAssignment, KindString, KindConcatenatedString,
		KindInterpolation, KindElse, KindTry, KindFinally, KindBoolean, KindReturn,
		KindRaise, KindYield, KindAwait, KindCall, KindAttribute, KindArgumentList,
		KindKeywordArgument, KindLambda, KindComment:
		return false
	}
	return false
}

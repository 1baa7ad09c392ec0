package token

// keywords maps every recognized keyword lexeme to its Type. Reserved,
// contextual, and future-reserved words all share one table: the lexer does
// not distinguish them, only the parser's grammar does.
var keywords = map[string]Type{
	"true":  True,
	"false": False,
	"null":  Null,

	"await":      Await,
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"class":      Class,
	"const":      Const,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"enum":       Enum,
	"export":     Export,
	"extends":    Extends,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"import":     Import,
	"in":         In,
	"instanceof": Instanceof,
	"new":        New,
	"return":     Return,
	"super":      Super,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"while":      While,
	"with":       With,

	"async":    Async,
	"from":     From,
	"get":      Get,
	"meta":     Meta,
	"of":       Of,
	"set":      Set,
	"target":   Target,
	"accessor": Accessor,

	"implements": Implements,
	"interface":  Interface,
	"let":        Let,
	"package":    Package,
	"private":    Private,
	"protected":  Protected,
	"public":     Public,
	"static":     Static,
	"yield":      Yield,
}

// LookupIdent classifies an identifier lexeme as a keyword Type or, failing
// that, as a plain Identifier.
//
// A lexeme is never considered for the keyword table when it is too short
// (at most 1 byte), too long (at least 12 bytes, longer than any entry
// above), or does not start with a lowercase ASCII letter; all keywords are
// lowercase ASCII and between 2 and 11 bytes, so this guard is a cheap
// reject before the map lookup rather than a behavior change.
func LookupIdent(s string) Type {
	if len(s) <= 1 || len(s) >= 12 || s[0] < 'a' || s[0] > 'z' {
		return Identifier
	}
	if typ, ok := keywords[s]; ok {
		return typ
	}
	return Identifier
}
